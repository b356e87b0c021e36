package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var sharedDb *Db

// Db is an in-memory sqlite database shared by the integration suite. It is
// created once per test binary; ClearDB wipes rows between scenarios.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	schema string
}

// NewDb returns the shared test database, creating and migrating it on the
// first call. The models map associates a table name with the GORM model
// migrated into it.
func NewDb(schema string, models map[string]any) *Db {
	dbOnce.Do(func() {
		sharedDb = openDb(schema, models)
	})
	return sharedDb
}

func openDb(schema string, models map[string]any) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(fmt.Sprintf("open sqlite: %v", err))
	}

	// A single connection keeps the shared in-memory database alive and
	// serializes access, which sqlite requires for writes anyway.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(fmt.Sprintf("open gorm: %v", err))
	}

	d := &Db{DbConn: conn, schema: schema, models: models}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("migrate test database: %v", err))
	}
	return d
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.models))
	for _, model := range d.models {
		modelList = append(modelList, model)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB deletes every row from every registered table.
func (d *Db) ClearDB() error {
	for _, model := range d.models {
		err := d.DbConn.
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(model).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// GetModel returns the GORM model registered for the given table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
