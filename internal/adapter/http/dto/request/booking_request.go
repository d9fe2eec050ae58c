package request

type SelectPointRequest struct {
	PointID int `json:"point_id" binding:"required"`
}

type ChooseServiceRequest struct {
	Service string `json:"service" binding:"required"`
}

type ScheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}
