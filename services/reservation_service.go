package services

import (
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/dto"
	"frontdesk/errors"
	"frontdesk/models"
	"frontdesk/services/logger"
	"frontdesk/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// fuzzyThreshold is the minimum levenshtein similarity for a fuzzy customer
// name match.
const fuzzyThreshold = 0.6

// ReservationService is the durable record of bookings.
type ReservationService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type ReservationServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// reservationRow is a reservation joined with its room's type.
type reservationRow struct {
	ID            uint
	CustomerName  string
	RoomNumber    string
	RoomType      string
	CheckIn       time.Time
	CheckOut      time.Time
	TotalAmount   float64
	PaymentStatus string
}

func (row *reservationRow) toResponse() dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:            row.ID,
		CustomerName:  row.CustomerName,
		RoomType:      row.RoomType,
		RoomNumber:    row.RoomNumber,
		CheckIn:       row.CheckIn.Format(validator.DateLayout),
		CheckOut:      row.CheckOut.Format(validator.DateLayout),
		TotalAmount:   row.TotalAmount,
		PaymentStatus: row.PaymentStatus,
	}
}

func (s *ReservationService) joinedRows() *gorm.DB {
	return s.db.Table("reservations").
		Select("reservations.id, reservations.customer_name, reservations.room_number, rooms.type AS room_type, reservations.check_in, reservations.check_out, reservations.total_amount, reservations.payment_status").
		Joins("JOIN rooms ON rooms.number = reservations.room_number").
		Order("reservations.check_in ASC")
}

// ListAll returns every reservation joined with its room type, ordered by
// check-in ascending.
func (s *ReservationService) ListAll() ([]dto.ReservationResponse, error) {
	var rows []reservationRow
	if err := s.joinedRows().Scan(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
	}
	return toResponses(rows), nil
}

// Search matches text against customer name, room type, room number or
// payment status, case-insensitively. When the substring pass finds nothing,
// a fuzzy pass ranks customer names so a misspelled name still finds its
// booking.
func (s *ReservationService) Search(text string) ([]dto.ReservationResponse, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(text)) + "%"

	var rows []reservationRow
	err := s.joinedRows().
		Where("LOWER(reservations.customer_name) LIKE ? OR LOWER(rooms.type) LIKE ? OR LOWER(reservations.room_number) LIKE ? OR LOWER(reservations.payment_status) LIKE ?",
			like, like, like, like).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not search reservations", err)
	}
	if len(rows) > 0 {
		return toResponses(rows), nil
	}

	return s.fuzzySearch(text)
}

// fuzzySearch finds reservations whose customer name is close to the query.
func (s *ReservationService) fuzzySearch(text string) ([]dto.ReservationResponse, error) {
	var rows []reservationRow
	if err := s.joinedRows().Scan(&rows).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not search reservations", err)
	}
	if len(rows) == 0 {
		return []dto.ReservationResponse{}, nil
	}

	query := normalizeInput(text)
	seen := make(map[string]bool)
	var names []string
	for _, row := range rows {
		name := normalizeInput(row.CustomerName)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	best := createMatcher(names).Closest(query)
	if best == "" || calculateSimilarity(best, query) < fuzzyThreshold {
		return []dto.ReservationResponse{}, nil
	}

	var matched []reservationRow
	for _, row := range rows {
		if normalizeInput(row.CustomerName) == best {
			matched = append(matched, row)
		}
	}
	return toResponses(matched), nil
}

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity returns the levenshtein similarity of two strings in
// [0, 1].
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(distance)/maxLen
}

func toResponses(rows []reservationRow) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, row.toResponse())
	}
	return responses
}

// GetByID loads a single reservation.
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := s.db.First(&res, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", errors.ErrReservationNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not read reservations", err)
	}
	return &res, nil
}

// Insert persists a structurally valid reservation. The non-overlap
// invariant is the availability engine's responsibility and is enforced
// before this is called.
func (s *ReservationService) Insert(res *models.Reservation) error {
	if err := validator.ValidateReservation(res); err != nil {
		return err
	}
	if err := s.db.Create(res).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not create reservation", err)
	}
	return nil
}

// Delete removes a reservation. Deleting a reservation never blocks.
func (s *ReservationService) Delete(id uint) error {
	result := s.db.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeStoreUnavailable, "Could not delete reservation", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Reservation not found", errors.ErrReservationNotFound)
	}

	s.invalidateOccupancy()
	s.logger.Info("deleted reservation %d", id)
	return nil
}

func (s *ReservationService) invalidateOccupancy() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(config.Ctx, s.rdb, OccupancyCacheKey); err != nil {
		s.logger.Error("could not invalidate occupancy cache: %v", err)
	}
}
