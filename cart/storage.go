package cart

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/food2go/storefront/utils"
)

// SnapshotVersion is bumped on any incompatible change to the
// persisted cart shape. There is no migration path; a mismatched
// snapshot resets to an empty cart.
const SnapshotVersion = 1

// ErrSnapshotSchema marks a stored snapshot written under a different
// schema version.
var ErrSnapshotSchema = errors.New("cart: snapshot schema version mismatch")

// Storage is the persistence port for cart snapshots: one opaque blob
// per storage key, last writer wins.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

type snapshot struct {
	SchemaVersion int `json:"schema_version"`
	Cart
}

// loadSnapshot reads and decodes the snapshot under key. Every failure
// mode, missing blob, broken JSON or a schema mismatch, degrades to an
// empty cart; a cart the customer has to rebuild beats an error they
// cannot act on.
func loadSnapshot(storage Storage, key string) Cart {
	data, err := storage.Load(key)
	if err != nil {
		utils.ErrorLogger.Printf("cart: loading snapshot %q: %v", key, err)
		return Cart{}
	}
	if len(data) == 0 {
		return Cart{}
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		utils.ErrorLogger.Printf("cart: decoding snapshot %q: %v", key, err)
		return Cart{}
	}
	if snap.SchemaVersion != SnapshotVersion {
		utils.ErrorLogger.Printf("cart: snapshot %q: %v (stored=%d, want=%d)",
			key, ErrSnapshotSchema, snap.SchemaVersion, SnapshotVersion)
		return Cart{}
	}
	return snap.Cart
}

// saveSnapshot persists best-effort: failures are logged and the
// in-memory cart stays authoritative.
func saveSnapshot(storage Storage, key string, cart Cart) {
	data, err := json.Marshal(snapshot{SchemaVersion: SnapshotVersion, Cart: cart})
	if err != nil {
		utils.ErrorLogger.Printf("cart: encoding snapshot %q: %v", key, err)
		return
	}
	if err := storage.Save(key, data); err != nil {
		utils.ErrorLogger.Printf("cart: saving snapshot %q: %v", key, err)
	}
}

// CartSnapshot is the durable storage row backing GormStorage.
type CartSnapshot struct {
	StorageKey string    `gorm:"primaryKey;type:varchar(64);column:storage_key"`
	Data       string    `gorm:"type:text"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// GormStorage persists snapshots in the cart_snapshots table, one row
// per session key.
type GormStorage struct {
	DB *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{DB: db}
}

func (g *GormStorage) Load(key string) ([]byte, error) {
	var row CartSnapshot
	err := g.DB.First(&row, "storage_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(row.Data), nil
}

func (g *GormStorage) Save(key string, data []byte) error {
	row := CartSnapshot{StorageKey: key, Data: string(data), UpdatedAt: time.Now()}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}

// MemoryStorage keeps snapshots in memory. Used by tests and as a
// fallback when no database is wired.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

func (m *MemoryStorage) Load(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

func (m *MemoryStorage) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.data[key] = buf
	return nil
}
