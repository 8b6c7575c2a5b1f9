package gtfs

type Stop struct {
	ID     string `csv:"stop_id"`
	Code   string `csv:"stop_code"`
	Name   string `csv:"stop_name"`
	ZoneID string `csv:"zone_id"`
}

type Trip struct {
	RouteID     string `csv:"route_id"`
	ServiceID   string `csv:"service_id"`
	ID          string `csv:"trip_id"`
	Name        string `csv:"trip_short_name"`
	DirectionID int    `csv:"direction_id"`
}

type StopTime struct {
	TripID        string `csv:"trip_id"`
	ArrivalTime   string `csv:"arrival_time"`
	DepartureTime string `csv:"departure_time"`
	StopID        string `csv:"stop_id"`
	StopSequence  int    `csv:"stop_sequence"`
}

type Calendar struct {
	ServiceID string `csv:"service_id"`
	Monday    int    `csv:"monday"`
	Tuesday   int    `csv:"tuesday"`
	Wednesday int    `csv:"wednesday"`
	Thursday  int    `csv:"thursday"`
	Friday    int    `csv:"friday"`
	Saturday  int    `csv:"saturday"`
	Sunday    int    `csv:"sunday"`
	Start     string `csv:"start_date"`
	End       string `csv:"end_date"`
}

// DayFlags returns the seven weekday flags in Monday-first order.
func (c *Calendar) DayFlags() [7]bool {
	return [7]bool{
		c.Monday == 1,
		c.Tuesday == 1,
		c.Wednesday == 1,
		c.Thursday == 1,
		c.Friday == 1,
		c.Saturday == 1,
		c.Sunday == 1,
	}
}

type FareAttribute struct {
	FareID string `csv:"fare_id"`
	Price  string `csv:"price"`
}

type FareRule struct {
	FareID        string `csv:"fare_id"`
	OriginID      string `csv:"origin_id"`
	DestinationID string `csv:"destination_id"`
}
