package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NonTerminalIsJSON(t *testing.T) {
	var buf bytes.Buffer

	p := New(&buf, false)

	assert.True(t, p.JSON())
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{w: &buf}

	err := p.Table(nil, []string{"ID", "NOMBRE"}, [][]string{{"m1", "Física"}, {"m2", "Química"}})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ID")
	assert.Contains(t, buf.String(), "Química")
	assert.Contains(t, buf.String(), "Total: 2")
}

func TestPrinter_Table_JSONMode(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	err := p.Table([]string{"a"}, []string{"X"}, [][]string{{"a"}})

	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, buf.String())
}

func TestPrinter_Message(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, true).Message("deleted %s", "m1")
	assert.Empty(t, buf.String())

	(&Printer{w: &buf}).Message("deleted %s", "m1")
	assert.Equal(t, "deleted m1\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Física", Truncate("Física", 10))
	assert.Equal(t, "Matemát...", Truncate("Matemáticas avanzadas", 10))
}

func TestFromContext_Default(t *testing.T) {
	assert.True(t, FromContext(context.Background()).JSON())
}
