// Package mongodb implementa el store de snapshots sobre MongoDB.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
)

const collectionName = "restock_snapshots"

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository implementa SnapshotRepository sobre una colección de MongoDB.
type SnapshotRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// snapshotDoc forma persistida; los decimales viajan como string.
type snapshotDoc struct {
	ID             string    `bson:"_id"`
	CustomerID     string    `bson:"customer_id"`
	Period         string    `bson:"period"`
	GeneratedAt    time.Time `bson:"generated_at"`
	SalesAvailable bool      `bson:"sales_available"`
	TotalLow       int       `bson:"total_low"`
	OutOfStock     int       `bson:"out_of_stock"`
	VeryLow        int       `bson:"very_low"`
	HighPriority   int       `bson:"high_priority"`
	Items          []itemDoc `bson:"items"`
}

type itemDoc struct {
	ProductName  string `bson:"product_name"`
	SKU          string `bson:"sku,omitempty"`
	StockQty     int    `bson:"stock_qty"`
	MonthlySales string `bson:"monthly_sales"`
	Velocity     string `bson:"velocity"`
	Priority     string `bson:"priority"`
}

// NewSnapshotRepository conecta, verifica con ping y crea el índice por cliente.
func NewSnapshotRepository(ctx context.Context, uri, dbName string) (*SnapshotRepository, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("conectar a mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	coll := client.Database(dbName).Collection(collectionName)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "generated_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("índice %s: %w", collectionName, err)
	}
	return &SnapshotRepository{client: client, coll: coll}, nil
}

// Save inserta el snapshot; _id repetido es ErrInvalidInput.
func (r *SnapshotRepository) Save(ctx context.Context, s *entity.RestockSnapshot) error {
	if _, err := r.coll.InsertOne(ctx, toDoc(s)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("snapshot %s ya existe: %w", s.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert restock_snapshot: %w", err)
	}
	return nil
}

// ListByCustomer más recientes primero.
func (r *SnapshotRepository) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.RestockSnapshot, int, error) {
	filter := bson.M{"customer_id": customerID}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count restock_snapshots: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find restock_snapshots: %w", err)
	}
	var docs []snapshotDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode restock_snapshots: %w", err)
	}

	out := make([]*entity.RestockSnapshot, 0, len(docs))
	for i := range docs {
		s, err := fromDoc(&docs[i])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	return out, int(total), nil
}

// Close cierra la conexión.
func (r *SnapshotRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func toDoc(s *entity.RestockSnapshot) snapshotDoc {
	items := make([]itemDoc, len(s.Items))
	for i, it := range s.Items {
		items[i] = itemDoc{
			ProductName:  it.ProductName,
			SKU:          it.SKU,
			StockQty:     it.StockQty,
			MonthlySales: it.MonthlySales.String(),
			Velocity:     it.Velocity.String(),
			Priority:     it.Priority,
		}
	}
	return snapshotDoc{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		Period:         s.Period,
		GeneratedAt:    s.GeneratedAt.UTC(),
		SalesAvailable: s.SalesAvailable,
		TotalLow:       s.TotalLow,
		OutOfStock:     s.OutOfStock,
		VeryLow:        s.VeryLow,
		HighPriority:   s.HighPriority,
		Items:          items,
	}
}

func fromDoc(d *snapshotDoc) (*entity.RestockSnapshot, error) {
	items := make([]entity.SnapshotItem, len(d.Items))
	for i, it := range d.Items {
		sales, err := decimal.NewFromString(it.MonthlySales)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: monthly_sales %q: %w", d.ID, it.MonthlySales, err)
		}
		velocity, err := decimal.NewFromString(it.Velocity)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: velocity %q: %w", d.ID, it.Velocity, err)
		}
		items[i] = entity.SnapshotItem{
			ProductName:  it.ProductName,
			SKU:          it.SKU,
			StockQty:     it.StockQty,
			MonthlySales: sales,
			Velocity:     velocity,
			Priority:     it.Priority,
		}
	}
	return &entity.RestockSnapshot{
		ID:             d.ID,
		CustomerID:     d.CustomerID,
		Period:         d.Period,
		GeneratedAt:    d.GeneratedAt,
		SalesAvailable: d.SalesAvailable,
		TotalLow:       d.TotalLow,
		OutOfStock:     d.OutOfStock,
		VeryLow:        d.VeryLow,
		HighPriority:   d.HighPriority,
		Items:          items,
	}, nil
}
