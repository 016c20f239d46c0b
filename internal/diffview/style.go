package diffview

// stylesheet is embedded verbatim in every rendered document.
const stylesheet = `
* {
    box-sizing: border-box;
}
.container {
    box-shadow: 0px 0px 5px #000;
    margin-bottom: 50px;
    margin-top: 50px;
    border-radius: 10px;
    overflow: hidden;
    background-color: #eee;
}
.container > .row:first-child {
    height: 30px;
}
.container > .row:nth-child(2) > .column .line-number,
.container > .row:nth-child(2) > .column .content {
    box-shadow: inset 0px 5px 5px -5px #000;
}
pre {
    padding: 0;
    margin: 0;
    white-space: break-spaces;
    word-break: break-word;
}
.row > .column:first-child{
    border-right: 1px solid #bbb;
}
.row {
    width: 100%;
    display: table;
}
.row > .column:first-child {
    left: 0;
}
.row > .column:nth-child(2) {
    right: 0;
}
.special {
    width: 100%;
    text-align: center;
    height: 24px;
    line-height: 24px;
    background-color: #eee;
    border-top: 1px solid #bbb;
    border-bottom: 1px solid #bbb;
}
.column {
    width: 50%;
    display: table-cell;
    vertical-align:top;
}
.column > div {
    display: table;
    width: 100%;
}
.header {
    padding-left: calc(5% + 3px);
    text-align: left;
    font-family: monospace;
    font-weight: normal;
    font-size: 12pt;
    background-color: #fff;
    height: 30px;
    line-height: 30px;
}
.line-number {
    width: 10%;
    display: table-cell;
    background-color: #eee;
    text-align: right;
    padding-right: 10px;
    vertical-align:top;
}
.content {
    display: table-cell;
    width: 90%;
    padding-left: 3px;
    vertical-align:top;
    background-color: #fff;
}
body {
    background-color: #eee;
    width: 100vw;
    font-size: 12pt;
    font-family: monospace;
}
body > div {
    width: 80%;
    margin: 0 auto;
}
.content.empty {
    background-color: #eee;
}
.after .line-number.added {
    background-color: rgb(191, 242, 191);
}
.before .line-number.removed {
    background-color: rgb(242, 191, 191);
}
.after .content.added {
    background-color: rgb(228, 255, 228);
}
.before .content.removed {
    background-color: rgb(255, 228, 228);
}
`
