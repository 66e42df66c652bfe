package services

import (
	"sort"
	"time"

	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/validator"

	"gorm.io/gorm"
)

// The availability engine is a set of pure queries over the two stores. Every
// function takes the *gorm.DB it should read through, so callers can run the
// fetch-decide-write sequence of a booking on a single transaction handle.

// FindAvailableRoom resolves a room assignment for a new booking: the free
// and clean rooms of the requested type, minus the ones with an overlapping
// reservation. The lowest room number wins so the result is reproducible.
func FindAvailableRoom(db *gorm.DB, roomType string, checkIn, checkOut time.Time) (string, error) {
	var cleanRooms []models.Room
	err := db.Where("type = ? AND condition = ?", roomType, models.ConditionClean).
		Find(&cleanRooms).Error
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
	}

	var occupied []string
	err = db.Model(&models.Reservation{}).
		Joins("JOIN rooms ON rooms.number = reservations.room_number").
		Where("rooms.type = ?", roomType).
		Where("reservations.check_in < ? AND reservations.check_out > ?", checkOut, checkIn).
		Pluck("reservations.room_number", &occupied).Error
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
	}

	number := pickRoom(cleanRooms, occupied)
	if number == "" {
		return "", errors.NewAppError(errors.ErrCodeNoRoomAvailable, "No clean room of type "+roomType+" is available for the requested dates", errors.ErrNoRoom)
	}
	return number, nil
}

// pickRoom subtracts the occupied numbers from the candidate rooms and picks
// the lowest remaining number.
func pickRoom(candidates []models.Room, occupied []string) string {
	taken := make(map[string]bool, len(occupied))
	for _, number := range occupied {
		taken[number] = true
	}

	var free []string
	for _, room := range candidates {
		if !taken[room.Number] {
			free = append(free, room.Number)
		}
	}
	if len(free) == 0 {
		return ""
	}

	sort.Strings(free)
	return free[0]
}

// IsRoomAvailable reports whether a specific room is free for [checkIn,
// checkOut). excludeReservationID ignores one reservation, so an edit does
// not conflict with itself; pass 0 to exclude nothing. Pure predicate, no
// side effects.
func IsRoomAvailable(db *gorm.DB, roomNumber string, checkIn, checkOut time.Time, excludeReservationID uint) (bool, error) {
	query := db.Model(&models.Reservation{}).
		Where("room_number = ?", roomNumber).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeReservationID != 0 {
		query = query.Where("id != ?", excludeReservationID)
	}

	var conflicts int64
	if err := query.Count(&conflicts).Error; err != nil {
		return false, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
	}
	return conflicts == 0, nil
}

// OccupancySnapshot returns every room's status on the given date: the
// room's physical condition plus its occupant, if a reservation covers the
// date. Read-only.
func OccupancySnapshot(db *gorm.DB, date time.Time) ([]dto.OccupancyEntry, error) {
	var rooms []models.Room
	if err := db.Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read rooms", err)
	}

	var reservations []models.Reservation
	err := db.Where("check_in <= ? AND check_out > ?", date, date).
		Find(&reservations).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
	}

	occupants := make(map[string]models.Reservation, len(reservations))
	for _, res := range reservations {
		occupants[res.RoomNumber] = res
	}

	entries := make([]dto.OccupancyEntry, 0, len(rooms))
	for _, room := range rooms {
		entry := dto.OccupancyEntry{
			RoomNumber: room.Number,
			RoomType:   room.Type,
			Condition:  room.Condition,
		}
		if res, ok := occupants[room.Number]; ok {
			checkOut := res.CheckOut.Format(validator.DateLayout)
			entry.Occupied = true
			entry.CustomerName = &res.CustomerName
			entry.OccupantCheckOut = &checkOut
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
