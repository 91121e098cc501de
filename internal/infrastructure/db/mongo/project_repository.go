package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskboard/taskboard-api/internal/core/domain"
)

const projectsCollection = "projects"

// ProjectRepository implements ports.ProjectRepository on MongoDB.
type ProjectRepository struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{coll: db.Collection(projectsCollection)}
}

type projectDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	OwnerID      string             `bson:"owner_id"`
	StartDate    time.Time          `bson:"start_date"`
	EndDate      *time.Time         `bson:"end_date,omitempty"`
	AppLink      string             `bson:"app_link,omitempty"`
	Status       string             `bson:"status"`
	Technologies []string           `bson:"technologies"`
	Budget       float64            `bson:"budget"`
	TaskIDs      []string           `bson:"task_ids"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d projectDoc) toDomain() *domain.Project {
	taskIDs := d.TaskIDs
	if taskIDs == nil {
		taskIDs = []string{}
	}
	technologies := d.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	p := &domain.Project{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		OwnerID:      d.OwnerID,
		StartDate:    d.StartDate.UTC(),
		AppLink:      d.AppLink,
		Status:       domain.ProjectStatus(d.Status),
		Technologies: technologies,
		Budget:       d.Budget,
		TaskIDs:      taskIDs,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if d.EndDate != nil {
		end := d.EndDate.UTC()
		p.EndDate = &end
	}
	return p
}

func fromDomainProject(p *domain.Project) projectDoc {
	return projectDoc{
		Title:        p.Title,
		Description:  p.Description,
		OwnerID:      p.OwnerID,
		StartDate:    p.StartDate,
		EndDate:      p.EndDate,
		AppLink:      p.AppLink,
		Status:       string(p.Status),
		Technologies: p.Technologies,
		Budget:       p.Budget,
		TaskIDs:      p.TaskIDs,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomainProject(p))
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc projectDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if ownerID != "" {
		filter["owner_id"] = ownerID
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	var projects []*domain.Project
	for cursor.Next(ctx) {
		var doc projectDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project: %w", err)
		}
		projects = append(projects, doc.toDomain())
	}
	return projects, cursor.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomainProject(p)
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return p, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

// AddTaskRef appends the task id to the project's task list.
func (r *ProjectRepository) AddTaskRef(ctx context.Context, projectID, taskID string) error {
	return r.updateTaskRefs(ctx, projectID, bson.M{"$push": bson.M{"task_ids": taskID}})
}

// RemoveTaskRef pulls the task id from the project's task list.
func (r *ProjectRepository) RemoveTaskRef(ctx context.Context, projectID, taskID string) error {
	return r.updateTaskRefs(ctx, projectID, bson.M{"$pull": bson.M{"task_ids": taskID}})
}

func (r *ProjectRepository) updateTaskRefs(ctx context.Context, projectID string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return domain.ErrProjectNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update["$set"] = bson.M{"updated_at": time.Now().UTC()}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update project task refs: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *ProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"status": string(status)})
}

func ensureProjectIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(projectsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
