package models

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "Available"
	RoomStatusOccupied    RoomStatus = "Occupied"
	RoomStatusMaintenance RoomStatus = "Maintenance"
	RoomStatusCleaning    RoomStatus = "Cleaning"
)

func (rs RoomStatus) String() string {
	return string(rs)
}

func (rs RoomStatus) IsValid() bool {
	switch rs {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return true
	default:
		return false
	}
}

// GetAllRoomStatuses returns every recognised room status
func GetAllRoomStatuses() []RoomStatus {
	return []RoomStatus{
		RoomStatusAvailable,
		RoomStatusOccupied,
		RoomStatusMaintenance,
		RoomStatusCleaning,
	}
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCheckedIn BookingStatus = "Checked-In"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusCompleted BookingStatus = "Completed"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn, BookingStatusCancelled, BookingStatusCompleted:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once the booking no longer holds its room
func (bs BookingStatus) IsTerminal() bool {
	return bs == BookingStatusCancelled || bs == BookingStatusCompleted
}

// GetAllBookingStatuses returns every recognised booking status
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusCheckedIn,
		BookingStatusCancelled,
		BookingStatusCompleted,
	}
}
