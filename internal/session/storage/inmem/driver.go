package inmem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/go-memdb"
	"github.com/mealdesk/admin-gateway/internal/random"
	"github.com/mealdesk/admin-gateway/internal/session"
	"github.com/mealdesk/admin-gateway/internal/upstream"
)

var tokenLength = 64

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"sessions": {
			Name: "sessions",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "Token"},
				},
				"actorID": {
					Name:         "actorID",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ActorID"},
				},
				"expires": {
					Name:         "expires",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.IntFieldIndex{Field: "Expires"},
				},
			},
		},
	},
}

// indexedSession flattens the actor ID into a top-level field so memdb can index it
type indexedSession struct {
	Token   string
	ActorID string
	Bearer  string
	Actor   upstream.Superadmin
	Expires int64
}

// Driver represents the in-memory session storage driver built using hashicorp/go-memdb
type Driver struct {
	db *memdb.MemDB
}

var _ session.Storage = (*Driver)(nil)

// New creates a new empty in-memory session storage driver
func New() (*Driver, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}
	return &Driver{db}, nil
}

// GetByRawToken retrieves a session by its raw (prior hashing) gateway token
func (driver *Driver) GetByRawToken(_ context.Context, rawToken string) (*session.Session, error) {
	hash := hashToken(rawToken)

	txn := driver.db.Txn(false)
	obj, err := txn.First("sessions", "id", hash)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	stored := obj.(*indexedSession)
	return &session.Session{
		Token:   stored.Token,
		Bearer:  stored.Bearer,
		Actor:   stored.Actor,
		Expires: stored.Expires,
	}, nil
}

// Create creates a new session and returns the raw gateway token
func (driver *Driver) Create(_ context.Context, bearer string, actor upstream.Superadmin, expires int64) (string, error) {
	rawToken := random.String(tokenLength, random.CharsetTokens)
	token := hashToken(rawToken)

	ses := &indexedSession{
		Token:   token,
		ActorID: actor.ID,
		Bearer:  bearer,
		Actor:   actor,
		Expires: expires,
	}

	txn := driver.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("sessions", ses); err != nil {
		return "", err
	}
	txn.Commit()

	return rawToken, nil
}

// TerminateByRawToken terminates a session by its raw gateway token
func (driver *Driver) TerminateByRawToken(_ context.Context, rawToken string) error {
	hash := hashToken(rawToken)

	txn := driver.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("sessions", "id", hash); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// TerminateByActorID terminates all sessions of a specific actor
func (driver *Driver) TerminateByActorID(_ context.Context, actorID string) error {
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("sessions", "actorID", actorID); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// TerminateExpired terminates all sessions that are expired
func (driver *Driver) TerminateExpired(_ context.Context) (int, error) {
	txn := driver.db.Txn(true)
	defer txn.Abort()

	it, err := txn.LowerBound("sessions", "expires", 0)
	if err != nil {
		return 0, err
	}

	// collect first; deleting while iterating would invalidate the iterator
	now := time.Now().Unix()
	var expired []*indexedSession
	for obj := it.Next(); obj != nil; obj = it.Next() {
		ses := obj.(*indexedSession)
		if ses.Expires > now {
			break
		}
		expired = append(expired, ses)
	}

	for _, ses := range expired {
		if err := txn.Delete("sessions", ses); err != nil {
			return 0, err
		}
	}

	txn.Commit()
	return len(expired), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
