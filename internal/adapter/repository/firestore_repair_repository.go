package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"repairlink/internal/domain/entity"
	"repairlink/internal/domain/repository"
	"repairlink/pkg/errors"
)

type firestoreRepairRepository struct {
	client *firestore.Client
}

func NewFirestoreRepairRepository(client *firestore.Client) repository.RepairRepository {
	return &firestoreRepairRepository{
		client: client,
	}
}

func (r *firestoreRepairRepository) Create(ctx context.Context, repair *entity.Repair) error {
	if repair.ID == "" {
		repair.ID = uuid.New().String()
	}

	now := time.Now()
	repair.CreatedAt = now
	repair.UpdatedAt = now

	_, err := r.client.Collection("repairs").Doc(repair.ID).Set(ctx, repair)
	if err != nil {
		return errors.Internal("Failed to create repair", err)
	}

	return nil
}

func (r *firestoreRepairRepository) GetByID(ctx context.Context, id string) (*entity.Repair, error) {
	doc, err := r.client.Collection("repairs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Repair", err)
		}
		return nil, errors.Internal("Failed to get repair", err)
	}

	var repair entity.Repair
	if err := doc.DataTo(&repair); err != nil {
		return nil, errors.Internal("Failed to parse repair data", err)
	}

	return &repair, nil
}

func (r *firestoreRepairRepository) Update(ctx context.Context, repair *entity.Repair) error {
	repair.UpdatedAt = time.Now()

	_, err := r.client.Collection("repairs").Doc(repair.ID).Set(ctx, repair)
	if err != nil {
		return errors.Internal("Failed to update repair", err)
	}

	return nil
}

func (r *firestoreRepairRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Repair, int64, error) {
	query := r.client.Collection("repairs").Query
	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count repairs", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var repairs []*entity.Repair

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate repairs", err)
		}

		var repair entity.Repair
		if err := doc.DataTo(&repair); err != nil {
			return nil, 0, errors.Internal("Failed to parse repair data", err)
		}
		repairs = append(repairs, &repair)
	}

	return repairs, total, nil
}

func (r *firestoreRepairRepository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Repair, int64, error) {
	return r.List(ctx, map[string]interface{}{"userId": userID}, limit, offset)
}

// Claim assigns the technician with a conditional update: the job status and
// payment status are re-read inside the transaction so two racing technicians
// cannot both claim the same job.
func (r *firestoreRepairRepository) Claim(ctx context.Context, jobID, technicianID string, transportationCost int64, scheduledTime time.Time) (*entity.Repair, error) {
	docRef := r.client.Collection("repairs").Doc(jobID)
	var claimed entity.Repair

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Repair", err)
			}
			return errors.Internal("Failed to get repair", err)
		}

		var repair entity.Repair
		if err := doc.DataTo(&repair); err != nil {
			return errors.Internal("Failed to parse repair data", err)
		}

		if repair.Status != entity.StatusFindingTechnician {
			return errors.Conflict("Job has already been claimed")
		}
		if repair.PaymentStatus != entity.PaymentPaid {
			return errors.Conflict("Job must be paid before it can be accepted")
		}

		repair.TechnicianID = technicianID
		repair.Status = entity.StatusMatched
		repair.TransportationCost = transportationCost
		repair.ScheduledTime = &scheduledTime
		repair.UpdatedAt = time.Now()

		claimed = repair
		return tx.Set(docRef, &repair)
	})
	if err != nil {
		return nil, err
	}

	return &claimed, nil
}

// SubmitRating writes the rating onto the job and folds it into the
// technician's running mean. Both reads and both writes sit in one
// transaction so concurrent ratings cannot lose updates.
func (r *firestoreRepairRepository) SubmitRating(ctx context.Context, jobID string, rating int, review string) (*entity.Repair, error) {
	repairRef := r.client.Collection("repairs").Doc(jobID)
	var rated entity.Repair

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(repairRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Repair", err)
			}
			return errors.Internal("Failed to get repair", err)
		}

		var repair entity.Repair
		if err := doc.DataTo(&repair); err != nil {
			return errors.Internal("Failed to parse repair data", err)
		}

		if repair.Status != entity.StatusCompleted {
			return errors.Conflict("Can only rate completed repairs")
		}
		if repair.TechnicianRating != 0 {
			return errors.Conflict("Repair has already been rated")
		}

		techRef := r.client.Collection("users").Doc(repair.TechnicianID)
		techDoc, err := tx.Get(techRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return errors.NotFound("Technician", err)
			}
			return errors.Internal("Failed to get technician", err)
		}

		var tech entity.User
		if err := techDoc.DataTo(&tech); err != nil {
			return errors.Internal("Failed to parse technician data", err)
		}

		repair.TechnicianRating = rating
		repair.CustomerReview = review
		repair.UpdatedAt = time.Now()

		total := tech.TechnicianDetails.Rating * float64(tech.TechnicianDetails.NumReviews)
		tech.TechnicianDetails.NumReviews++
		tech.TechnicianDetails.Rating = (total + float64(rating)) / float64(tech.TechnicianDetails.NumReviews)
		tech.TechnicianDetails.TotalRepairs++
		tech.UpdatedAt = time.Now()

		if err := tx.Set(techRef, &tech); err != nil {
			return errors.Internal("Failed to update technician rating", err)
		}

		rated = repair
		return tx.Set(repairRef, &repair)
	})
	if err != nil {
		return nil, err
	}

	return &rated, nil
}
