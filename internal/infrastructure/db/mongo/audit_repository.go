package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

const auditCollection = "security_events"

// MongoAuditRepository stores the append-only security trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	Type          string `bson:"type"`
	Email         string `bson:"email"`
	MandatedRole  string `bson:"mandated_role,omitempty"`
	AttemptedRole string `bson:"attempted_role,omitempty"`
	Timestamp     int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuditEvent) error {
	doc := auditDoc{
		Type:          string(event.Type),
		Email:         event.Email,
		MandatedRole:  string(event.MandatedRole),
		AttemptedRole: string(event.AttemptedRole),
		Timestamp:     event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert security event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEvent, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find security events: %w", err)
	}
	defer cur.Close(ctx)

	events := make([]domain.AuditEvent, 0, limit)
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode security event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			Type:          domain.AuditEventType(doc.Type),
			Email:         doc.Email,
			MandatedRole:  domain.Role(doc.MandatedRole),
			AttemptedRole: domain.Role(doc.AttemptedRole),
			Timestamp:     time.Unix(doc.Timestamp, 0).UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate security events: %w", err)
	}
	return events, nil
}
