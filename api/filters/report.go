package filters

// ReportSort is the ordering of the community reports of a player.
type ReportSort string

const (
	ReportSortTop           ReportSort = "top"
	ReportSortNew           ReportSort = "new"
	ReportSortControversial ReportSort = "controversial"
)

// Query parameters for the player detail.
type PlayerDetailParams struct {
	Sort string `form:"sort,default=top" binding:"omitempty,oneof=top new controversial"`
}

// ReportSort returns the typed sort, top when empty.
func (p *PlayerDetailParams) ReportSort() ReportSort {
	if p.Sort == "" {
		return ReportSortTop
	}
	return ReportSort(p.Sort)
}

// OrderClause is the SQL ordering for the sort mode.
func (s ReportSort) OrderClause() string {
	switch s {
	case ReportSortNew:
		return "created_at DESC, id DESC"
	case ReportSortControversial:
		return "(upvotes + downvotes) DESC, id ASC"
	}
	return "score DESC, id ASC"
}
