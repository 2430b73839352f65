package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/farmtech/agrirent/internal/models"
)

type stubSender struct {
	err   error
	calls int
}

func (s *stubSender) Send(ctx context.Context, phone, message string) error {
	s.calls++
	return s.err
}

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.NotificationLog{}))
	return db
}

func TestDispatcher_SuccessfulSendLeavesNoDeadLetter(t *testing.T) {
	db := testDB(t)
	sender := &stubSender{}

	d := NewDispatcher(sender, NewDeadLetterLog(db))
	d.Dispatch(Message{Phone: "9999999999", Body: "hello"})
	d.Close()

	assert.Equal(t, 1, sender.calls)

	var count int64
	db.Model(&models.NotificationLog{}).Count(&count)
	assert.Zero(t, count)
}

func TestDispatcher_FailedSendIsDeadLettered(t *testing.T) {
	db := testDB(t)
	sender := &stubSender{err: errors.New("upstream 500")}

	bookingID := uint(7)
	d := NewDispatcher(sender, NewDeadLetterLog(db))
	d.Dispatch(Message{BookingID: &bookingID, Phone: "9999999999", Body: "booked"})
	d.Close()

	var entries []models.NotificationLog
	assert.NoError(t, db.Find(&entries).Error)
	assert.Len(t, entries, 1)
	assert.Equal(t, "9999999999", entries[0].Phone)
	assert.Equal(t, "booked", entries[0].Message)
	assert.Equal(t, bookingID, *entries[0].BookingID)
	assert.Contains(t, entries[0].Error, "upstream 500")
}

func TestDispatcher_SkipsEmptyPhone(t *testing.T) {
	db := testDB(t)
	sender := &stubSender{}

	d := NewDispatcher(sender, NewDeadLetterLog(db))
	d.Dispatch(Message{Phone: "", Body: "no recipient"})
	d.Close()

	assert.Zero(t, sender.calls)
}
