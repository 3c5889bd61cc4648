package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/studiobarber49/agendamento-api/internal/models"
	"github.com/studiobarber49/agendamento-api/internal/store"
)

// AppointmentGormRepository persiste agendamentos no Postgres local.
// A constraint de unicidade em (date, time) é quem decide corridas de
// submissão; 23505 vira store.ErrConflict.
type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) FetchTimesByDate(
	ctx context.Context,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("date = ?", date).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, unavailable(err)
	}

	return times, nil
}

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return store.ErrConflict
		}
		return unavailable(err)
	}
	return nil
}

func (r *AppointmentGormRepository) FetchAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, unavailable(err)
	}

	return aps, nil
}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	id string,
	patch store.Patch,
) (*models.Appointment, error) {

	fields := map[string]any{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Phone != nil {
		fields["phone"] = *patch.Phone
	}
	if patch.Services != nil {
		fields["services"] = pq.StringArray(patch.Services)
	}
	if patch.Date != nil {
		fields["date"] = *patch.Date
	}
	if patch.Time != nil {
		fields["time"] = *patch.Time
	}
	if patch.TotalValue != nil {
		fields["total_value"] = *patch.TotalValue
	}

	if len(fields) > 0 {
		res := r.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ?", id).
			Updates(fields)

		if res.Error != nil {
			if isUniqueViolation(res.Error) {
				return nil, store.ErrConflict
			}
			return nil, unavailable(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, store.ErrNotFound
		}
	}

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, unavailable(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id)
	if res.Error != nil {
		return unavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}

// Compile-time check
var _ store.Store = (*AppointmentGormRepository)(nil)
