package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wramirez/minimarket-crm/pkg/config"
)

// Nombres de colección.
const (
	colCustomers = "clientes"
	colEmployees = "empleados"
	colContracts = "contratos"
	colProducts  = "productos"
	colStock     = "stock"
	colSales     = "ventas"
	colInvoices  = "historial_facturas"
	colUsers     = "usuarios"
	colCounters  = "counters"
)

// Connect abre la conexión a MongoDB y verifica con un ping.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, func(context.Context) error, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("conectar a mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("ping a mongodb: %w", err)
	}

	return client.Database(cfg.Database), client.Disconnect, nil
}

// containsRegex filtro case-insensitive por substring, con el término escapado.
func containsRegex(q string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
}

func mongoUpsert() *options.UpdateOptions {
	return options.Update().SetUpsert(true)
}
