package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type TrackerContext string

const (
	DBContextURL TrackerContext = "tracker-backend-url"
)

func config() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	// Migration runs with foreign keys disabled since sqlite does not
	// support ALTER COLUMN and tables are recreated during migration
	db, err := gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return register(db)
}

// ConnectPostgres opens a PostgreSQL database and migrates it.
func ConnectPostgres(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return register(db)
}

// PostgresDSN builds the connection string for ConnectPostgres.
func PostgresDSN(host, user, password, name string) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, user, password, name)
}

// register registers the error translation callbacks and sets DB.
func register(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "tracker:after_query", queryCallback},
		{db.Callback().Query().After("*"), "tracker:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "tracker:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "tracker:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "tracker:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "tracker:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "tracker:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y", then remove plural "s"
		name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// One timesheet per user and week
	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: timesheets.user_id, timesheets.week") {
		db.Error = ErrTimesheetWeekNotUnique
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(db.Error, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "timesheet_user_week" {
		db.Error = ErrTimesheetWeekNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if driverFailure(db.Error) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// driverFailure reports whether err comes from the database driver and
// carries no information a user can act on.
func driverFailure(err error) bool {
	// "sql: database is closed" is hard-coded in the sql module
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		return true
	}

	// Unique violations are translated by createUpdateCallback before
	// this runs, everything left from PostgreSQL is internal
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}

	var connectErr *pgconn.ConnectError
	return errors.As(err, &connectErr) || pgconn.Timeout(err)
}

// transaction runs fc in a transaction on DB.
//
// Errors from starting or committing the transaction do not pass the
// callbacks, so they are translated here.
func transaction(fc func(tx *gorm.DB) error) error {
	err := DB.Transaction(fc)
	if err != nil && driverFailure(err) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Project{}, Timesheet{}, TimesheetEntry{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
