package dto

// ReportRangeQuery is a Bikram Sambat date range for report queries.
type ReportRangeQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

// TopQuery is a ranged top-N report query.
type TopQuery struct {
	From  string `form:"from" binding:"required"`
	To    string `form:"to" binding:"required"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}
