package model

// SeatType classifies a seat on the floor plan.
type SeatType string

const (
	SeatStandard SeatType = "STANDARD"
	SeatQuiet    SeatType = "QUIET"
	SeatPC       SeatType = "PC"
)

// Seat is a bookable place on the library floor plan. X and Y address the
// grid cell; the label is derived from the cell by the layout editor and
// rewritten whenever the seat moves. Rotation is one of 0, 90, 180, 270.
type Seat struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Type          SeatType `json:"type"`
	IsMaintenance bool     `json:"isMaintenance"`
	X             int      `json:"x"`
	Y             int      `json:"y"`
	Rotation      int      `json:"rotation"`
}
