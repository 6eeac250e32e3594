package collector

// MergeMode selects how details are joined to catalog rows.
type MergeMode int

const (
	// MergeAligned keeps row i paired with the detail fetched for show i.
	// A failed lookup leaves that row's detail columns empty.
	MergeAligned MergeMode = iota

	// MergePositional drops failed lookups first and then pairs the
	// remaining details with catalog rows by index. After the first failure
	// every row carries the detail of a later show and the trailing rows
	// carry none. Kept for compatibility with datasets produced that way.
	MergePositional
)

func (m MergeMode) String() string {
	switch m {
	case MergeAligned:
		return "aligned"
	case MergePositional:
		return "positional"
	default:
		return "unknown"
	}
}

// Record is one output row: a catalog entry and, when available, a detail.
type Record struct {
	Summary ShowSummary
	Detail  *ShowDetail
}

// Merge joins catalog and details into one record per catalog entry.
// details is expected to be index-aligned with catalog, nil marking a gap, as
// returned by Enrich.
func Merge(catalog []ShowSummary, details []*ShowDetail, mode MergeMode) []Record {
	if mode == MergePositional {
		compact := make([]*ShowDetail, 0, len(details))
		for _, d := range details {
			if d != nil {
				compact = append(compact, d)
			}
		}
		details = compact
	}

	records := make([]Record, len(catalog))
	for i, show := range catalog {
		records[i].Summary = show
		if i < len(details) {
			records[i].Detail = details[i]
		}
	}
	return records
}
