package transition

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
)

func TestHeadOutsideBoundaryIsEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Head().Render(context.Background(), &buf))
	require.Empty(t, buf.String())
	require.False(t, Enabled(context.Background()))
}

func TestBoundaryEnablesHead(t *testing.T) {
	t.Parallel()

	var sawEnabled bool
	child := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sawEnabled = Enabled(ctx)
		if err := Head().Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "<p>child</p>")
		return err
	})

	var buf bytes.Buffer
	require.NoError(t, Boundary(child).Render(context.Background(), &buf))

	require.True(t, sawEnabled)
	require.Equal(t, headMarkup+"<p>child</p>", buf.String())
}

func TestBoundaryWithNilChildren(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Boundary(nil).Render(context.Background(), &buf))
	require.Empty(t, buf.String())
}
