// Package store is the durable client-side state: the session, the
// remembered login, and the last-known-good ticket mirror. Everything
// lives in one SQLite database under the user's state directory. Access
// is last-write-wins; concurrent processes are not coordinated.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"deskline/internal/domain/session"
	"deskline/internal/domain/ticket"
)

// Single-row tables keyed by a fixed id.
const singletonID = 1

type sessionRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Token     string `gorm:"not null"`
	User      datatypes.JSON
	UpdatedAt time.Time
}

func (sessionRecord) TableName() string { return "sessions" }

type rememberRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"not null"`
	Secret    []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (rememberRecord) TableName() string { return "remembered_logins" }

type mirrorRecord struct {
	ID           uint `gorm:"primaryKey"`
	Tickets      datatypes.JSON
	TotalRecords int64
	UpdatedAt    time.Time
}

func (mirrorRecord) TableName() string { return "ticket_mirror" }

// Store wraps the local SQLite database.
type Store struct {
	db  *gorm.DB
	dir string
}

// Open opens (creating if needed) the state database at dir/name.
func Open(dir, name string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(filepath.Join(dir, name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}

	if err := db.AutoMigrate(&sessionRecord{}, &rememberRecord{}, &mirrorRecord{}); err != nil {
		return nil, fmt.Errorf("migrate state database: %w", err)
	}

	return &Store{db: db, dir: dir}, nil
}

// SaveSession persists the session, replacing any previous one.
func (s *Store) SaveSession(sess session.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("marshal session user: %w", err)
	}
	record := sessionRecord{
		ID:    singletonID,
		Token: sess.Token,
		User:  userJSON,
	}
	return s.db.Save(&record).Error
}

// LoadSession returns the persisted session, if any.
func (s *Store) LoadSession() (session.Session, bool, error) {
	var record sessionRecord
	err := s.db.First(&record, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.Session{}, false, nil
	}
	if err != nil {
		return session.Session{}, false, fmt.Errorf("load session: %w", err)
	}

	var user session.User
	if len(record.User) > 0 {
		if err := json.Unmarshal(record.User, &user); err != nil {
			return session.Session{}, false, fmt.Errorf("decode session user: %w", err)
		}
	}
	return session.Session{Token: record.Token, User: user}, true, nil
}

// ClearSession removes the persisted session. Clearing an absent session
// is a no-op.
func (s *Store) ClearSession() error {
	return s.db.Delete(&sessionRecord{}, singletonID).Error
}

// RememberLogin persists the login for form prefill. The password is
// sealed with a machine-local key, never stored in the clear.
func (s *Store) RememberLogin(email, password string) error {
	key, err := s.rememberKey()
	if err != nil {
		return err
	}
	sealed, err := seal(key, []byte(password))
	if err != nil {
		return err
	}
	record := rememberRecord{
		ID:     singletonID,
		Email:  email,
		Secret: sealed,
	}
	return s.db.Save(&record).Error
}

// RememberedLogin returns the remembered login, if any.
func (s *Store) RememberedLogin() (email, password string, ok bool, err error) {
	var record rememberRecord
	dbErr := s.db.First(&record, singletonID).Error
	if errors.Is(dbErr, gorm.ErrRecordNotFound) {
		return "", "", false, nil
	}
	if dbErr != nil {
		return "", "", false, fmt.Errorf("load remembered login: %w", dbErr)
	}

	key, err := s.rememberKey()
	if err != nil {
		return "", "", false, err
	}
	plain, err := open(key, record.Secret)
	if err != nil {
		// key rotated or file tampered with; treat as not remembered
		return "", "", false, nil
	}
	return record.Email, string(plain), true, nil
}

// ForgetLogin removes any remembered login.
func (s *Store) ForgetLogin() error {
	return s.db.Delete(&rememberRecord{}, singletonID).Error
}

// SaveMirror replaces the last-known-good ticket snapshot. Callers only
// mirror non-empty pages.
func (s *Store) SaveMirror(tickets []ticket.Ticket, totalRecords int64) error {
	ticketsJSON, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("marshal ticket mirror: %w", err)
	}
	record := mirrorRecord{
		ID:           singletonID,
		Tickets:      ticketsJSON,
		TotalRecords: totalRecords,
	}
	return s.db.Save(&record).Error
}

// LoadMirror returns the mirrored snapshot, if any.
func (s *Store) LoadMirror() ([]ticket.Ticket, int64, bool, error) {
	var record mirrorRecord
	err := s.db.First(&record, singletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("load ticket mirror: %w", err)
	}

	var tickets []ticket.Ticket
	if err := json.Unmarshal(record.Tickets, &tickets); err != nil {
		return nil, 0, false, fmt.Errorf("decode ticket mirror: %w", err)
	}
	return tickets, record.TotalRecords, true, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
