package dto

// POST /generate 表单字段
const (
	FieldCoordinates = "coordinates"
	FieldQuery       = "query"
	FieldNumResults  = "num-results"
	FieldEventType   = "event-type"
	FieldResultOrder = "result-order"
	FieldSafeSearch  = "safe-search"
	FieldCaptions    = "captions"
	FieldCategory    = "category"
	FieldDefinition  = "definition"
	FieldDimension   = "dimension"
	FieldDuration    = "duration"
	FieldStartDate   = "start-date"
	FieldEndDate     = "end-date"
)
