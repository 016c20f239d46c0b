package diffview

import "log/slog"

// HunkSeparator marks the gap between two non-adjacent hunks of a file.
const HunkSeparator = "· · · · ·"

type Aligner struct {
	log *slog.Logger
}

func NewAligner(log *slog.Logger) *Aligner {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Aligner{log: log}
}

// Align turns parsed files into a Document whose before and after hunks
// can be rendered line by line next to each other.
func (a *Aligner) Align(files []PatchedFile) Document {
	doc := Document{
		Before: make([]File, 0, len(files)),
		After:  make([]File, 0, len(files)),
	}
	for _, pf := range files {
		before := File{Label: pf.Source, Hunks: make([]Hunk, 0, len(pf.Hunks))}
		after := File{Label: pf.Target, Hunks: make([]Hunk, 0, len(pf.Hunks))}

		for _, lines := range pf.Hunks {
			if n := len(before.Hunks); n > 0 {
				before.Hunks[n-1].Rows = append(before.Hunks[n-1].Rows, separatorRow(HunkSeparator))
				after.Hunks[n-1].Rows = append(after.Hunks[n-1].Rows, separatorRow(HunkSeparator))
			}
			b, f := a.alignHunk(pf.Target, lines)
			before.Hunks = append(before.Hunks, b)
			after.Hunks = append(after.Hunks, f)
		}

		doc.Before = append(doc.Before, before)
		doc.After = append(doc.After, after)
	}
	return doc
}

func (a *Aligner) alignHunk(path string, lines []Line) (Hunk, Hunk) {
	before := make([]Row, 0, len(lines))
	after := make([]Row, 0, len(lines))
	var trailers []Row

	for _, line := range lines {
		switch {
		case line.Type == LineAdded:
			row := Row{Kind: KindAdd, Number: line.Target, Text: line.Text}
			if awaitingPair(before, after) {
				slot, ok := backfillSlot(after)
				// Unreachable: awaitingPair already saw an Empty last row.
				if !ok {
					a.log.Debug("dropped unpaired addition", "path", path, "line", line.Text)
					continue
				}
				after[slot] = row
				continue
			}
			after = append(after, row)
			before = append(before, emptyRow())

		case line.Type == LineRemoved:
			row := Row{Kind: KindRemove, Number: line.Source, Text: line.Text}
			if awaitingPair(after, before) {
				if slot, ok := backfillSlot(before); ok {
					before[slot] = row
					continue
				}
			}
			before = append(before, row)
			after = append(after, emptyRow())

		case line.Source == nil:
			trailers = append(trailers, separatorRow(line.Text))

		default:
			before = append(before, Row{Kind: KindContext, Number: line.Source, Text: line.Text})
			after = append(after, Row{Kind: KindContext, Number: line.Target, Text: line.Text})
		}
	}

	before = append(before, trailers...)
	after = append(after, trailers...)
	return Hunk{Rows: before}, Hunk{Rows: after}
}

// awaitingPair reports whether the last row of own is a one-sided change
// still waiting for its counterpart on the other side.
func awaitingPair(own, other []Row) bool {
	if len(own) == 0 || len(other) == 0 {
		return false
	}
	ownKind := own[len(own)-1].Kind
	return (ownKind == KindRemove || ownKind == KindAdd) && other[len(other)-1].Kind == KindEmpty
}

// backfillSlot returns the index of the first row in the trailing run of
// Empty rows. ok is false when the last row is not Empty.
func backfillSlot(rows []Row) (int, bool) {
	i := len(rows)
	for i > 0 && rows[i-1].Kind == KindEmpty {
		i--
	}
	if i == len(rows) {
		return 0, false
	}
	return i, true
}
