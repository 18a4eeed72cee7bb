package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// catalogEntry is a minimal stand-in for the catalog tables the client
// serves in production.
type catalogEntry struct {
	ID   int
	Name string
}

func newTestClient(t *testing.T) (*Client, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(&catalogEntry{}); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return NewFromConn(conn), conn
}

func TestWithTx_CommitsAndRollbacks(t *testing.T) {
	client, conn := newTestClient(t)

	ctx := context.Background()
	if err := client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Create(&catalogEntry{Name: "aspirin"}).Error
	}); err != nil {
		t.Fatalf("WithTx commit failed: %v", err)
	}

	var count int64
	if err := conn.Model(&catalogEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}

	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Create(&catalogEntry{Name: "discarded"}).Error; err != nil {
			return err
		}
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected WithTx to return an error")
	}
	if err := conn.Model(&catalogEntry{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed after rollback: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected rollback to leave 1 record, got %d", count)
	}
}

func TestReadTx_SeesCommittedRows(t *testing.T) {
	client, conn := newTestClient(t)
	if err := conn.Create(&catalogEntry{Name: "ibuprofen"}).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var got int64
	err := client.ReadTx(context.Background(), func(tx *sql.Tx) error {
		return tx.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM catalog_entries").Scan(&got)
	})
	if err != nil {
		t.Fatalf("ReadTx: %v", err)
	}
	if got != 1 {
		t.Fatalf("expected 1 row visible, got %d", got)
	}
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t)
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}
