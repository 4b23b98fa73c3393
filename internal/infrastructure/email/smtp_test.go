package email

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/cartonworks/stockline/internal/domain/carton"
	"github.com/cartonworks/stockline/internal/domain/dimension"
	"github.com/cartonworks/stockline/internal/shared/config"
	"github.com/cartonworks/stockline/internal/shared/logger"
)

type captureSender struct {
	messages []*gomail.Message
	err      error
}

func (s *captureSender) DialAndSend(m ...*gomail.Message) error {
	s.messages = append(s.messages, m...)
	return s.err
}

type stubDedup struct {
	allow map[uint]bool
}

func (d stubDedup) TryAcquire(_ context.Context, cartonID uint) (bool, error) {
	return d.allow[cartonID], nil
}

func testCarton(t *testing.T, id uint, name string, total, available int) *carton.Carton {
	t.Helper()
	box, err := dimension.NewBoxFromFloat(148, 102, 52)
	require.NoError(t, err)
	stock, err := carton.RestoreStock(total, available)
	require.NoError(t, err)
	c, err := carton.NewCartonWithStock(name, "Acme", box, stock, 1)
	require.NoError(t, err)
	c.SetID(id)
	return c
}

func newTestNotifier(sender messageSender, dedup Deduplicator, enabled bool) *LowStockNotifier {
	n := NewLowStockNotifier(config.EmailConfig{
		Enabled:         enabled,
		FromAddress:     "stock@example.com",
		FromName:        "Stock",
		AlertRecipients: []string{"floor@example.com"},
	}, dedup, logger.NewNopLogger())
	n.sender = sender
	return n
}

func TestLowStockNotifier_SendsEscapedTable(t *testing.T) {
	sender := &captureSender{}
	n := newTestNotifier(sender, nil, true)

	low := testCarton(t, 1, "<Mailer>", 100, 4)
	err := n.NotifyLowStock(context.Background(), []*carton.Carton{low})
	require.NoError(t, err)
	require.Len(t, sender.messages, 1)

	var buf bytes.Buffer
	_, err = sender.messages[0].WriteTo(&buf)
	require.NoError(t, err)
	body := buf.String()
	assert.Contains(t, body, "Low stock: 1 carton(s) need restocking")
	assert.Contains(t, body, "4 of 100 available")
	assert.Contains(t, lowStockHTML([]*carton.Carton{low}), "<td>&lt;Mailer&gt;</td>")
}

func TestLowStockNotifier_Disabled(t *testing.T) {
	sender := &captureSender{}
	n := newTestNotifier(sender, nil, false)

	require.NoError(t, n.NotifyLowStock(context.Background(), []*carton.Carton{testCarton(t, 1, "A", 100, 1)}))
	assert.Empty(t, sender.messages)
}

func TestLowStockNotifier_SkipsCartonsInCooldown(t *testing.T) {
	sender := &captureSender{}
	n := newTestNotifier(sender, stubDedup{allow: map[uint]bool{2: true}}, true)

	cartons := []*carton.Carton{testCarton(t, 1, "Quiet", 100, 1), testCarton(t, 2, "Loud", 100, 1)}
	require.NoError(t, n.NotifyLowStock(context.Background(), cartons))
	require.Len(t, sender.messages, 1)

	var buf bytes.Buffer
	_, err := sender.messages[0].WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Loud")
	assert.NotContains(t, buf.String(), "Quiet")

	sender.messages = nil
	n.dedup = stubDedup{}
	require.NoError(t, n.NotifyLowStock(context.Background(), cartons))
	assert.Empty(t, sender.messages)
}

func TestLowStockNotifier_WrapsSendFailure(t *testing.T) {
	boom := errors.New("smtp down")
	n := newTestNotifier(&captureSender{err: boom}, nil, true)

	err := n.NotifyLowStock(context.Background(), []*carton.Carton{testCarton(t, 1, "A", 100, 1)})
	assert.ErrorIs(t, err, boom)
}
