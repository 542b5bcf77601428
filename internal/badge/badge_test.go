package badge

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testData() Data {
	return Data{
		PassID:       "EP-000042",
		AttendeeName: "Alice Liddell",
		Company:      "Wonderland Ltd",
		EventName:    "GopherCon",
	}
}

func TestRenderer_Render(t *testing.T) {
	r := New(Config{BottomLabel: "VISITOR"}, newTestLogger(t))

	doc, err := r.Render(testData())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"), "output is not a PDF")
	// Two badges plus codes never fit in a trivial document.
	assert.Greater(t, len(doc), 2000)
}

func TestRenderer_Render_MissingBannerDegrades(t *testing.T) {
	r := New(Config{
		BannerPath:    "/nonexistent/banner.png",
		BannerCaption: "EventPass",
	}, newTestLogger(t))

	assert.Nil(t, r.banner)

	doc, err := r.Render(testData())

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
}

func TestRenderer_Render_EmptyFieldsStillRenders(t *testing.T) {
	r := New(Config{}, newTestLogger(t))

	// An empty pass id makes both code encoders fail; the badge falls
	// back to placeholder blocks instead of failing the document.
	doc, err := r.Render(Data{})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
}

func TestRenderer_Render_LongNameShrinksNotOverflows(t *testing.T) {
	r := New(Config{}, newTestLogger(t))

	d := testData()
	d.AttendeeName = strings.Repeat("Wolfeschlegelsteinhausen ", 4)

	doc, err := r.Render(d)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
}

func TestRenderer_Render_Concurrent(t *testing.T) {
	r := New(Config{}, newTestLogger(t))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			doc, err := r.Render(testData())
			assert.NoError(t, err)
			assert.True(t, strings.HasPrefix(string(doc), "%PDF-"))
		}()
	}
	wg.Wait()
}
