package vault

import (
	"fmt"
	"testing"

	"github.com/mmcdole/photovault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePage(page, n int) []domain.Photo {
	photos := make([]domain.Photo, n)
	for i := range photos {
		photos[i] = domain.Photo{
			ID:     fmt.Sprintf("%d-%d", page, i),
			Author: "author",
			Width:  400,
			Height: 300,
		}
	}
	return photos
}

func TestNewPagerInitialState(t *testing.T) {
	p := New()

	s := p.Snapshot()
	assert.Empty(t, s.Photos)
	assert.Equal(t, 1, s.NextPage)
	assert.False(t, s.Loading)
	assert.False(t, s.Error)
	assert.Equal(t, PhaseIdle, p.Phase())
	assert.Equal(t, DisplayGrid, p.Display())
}

func TestSuccessiveFetchesConcatenate(t *testing.T) {
	p := New()
	var want []domain.Photo

	for page := 1; page <= 4; page++ {
		got, ok := p.FetchNext()
		require.True(t, ok)
		require.Equal(t, page, got)

		records := makePage(page, page*3)
		want = append(want, records...)
		p.FetchSucceeded(records, got)
	}

	assert.Equal(t, want, p.Photos())
	assert.Equal(t, 5, p.NextPage())
	assert.False(t, p.Loading())
	assert.Equal(t, PhaseSuccess, p.Phase())
}

func TestEmptyPageStillAdvancesCursor(t *testing.T) {
	p := New()
	p.StartLoading()
	p.FetchSucceeded(nil, 1)

	assert.Equal(t, 2, p.NextPage())
	assert.Equal(t, 0, p.Len())
}

func TestDuplicatesAreKept(t *testing.T) {
	p := New()
	page := makePage(1, 2)

	p.FetchSucceeded(page, 1)
	p.FetchSucceeded(page, 2)

	assert.Equal(t, 4, p.Len())
	assert.Equal(t, p.Photos()[0], p.Photos()[2])
}

func TestFetchFailedKeepsPhotosAndCursor(t *testing.T) {
	p := New()
	p.FetchSucceeded(makePage(1, 5), 1)
	before := p.Snapshot()

	p.StartLoading()
	p.FetchFailed()

	after := p.Snapshot()
	assert.Equal(t, before.Photos, after.Photos)
	assert.Equal(t, before.NextPage, after.NextPage)
	assert.False(t, after.Loading)
	assert.True(t, after.Error)
	assert.Equal(t, PhaseFailure, p.Phase())
}

func TestErrorIsStickyUntilSuccess(t *testing.T) {
	p := New()
	p.StartLoading()
	p.FetchFailed()

	p.StartLoading()
	assert.True(t, p.Failed(), "starting a new attempt must not clear the error")
	assert.True(t, p.Loading())

	p.FetchSucceeded(makePage(1, 1), 1)
	assert.False(t, p.Failed())
}

func TestFetchNextRejectsReentrantCalls(t *testing.T) {
	p := New()

	page, ok := p.FetchNext()
	require.True(t, ok)
	assert.Equal(t, 1, page)

	_, ok = p.FetchNext()
	assert.False(t, ok, "second fetch must wait for the first to settle")

	p.FetchFailed()
	page, ok = p.FetchNext()
	require.True(t, ok)
	assert.Equal(t, 1, page, "failed page is retried with the same cursor")
}

func TestDisplayPolicy(t *testing.T) {
	tests := []struct {
		name    string
		photos  int
		loading bool
		failed  bool
		want    Display
	}{
		{"empty loading", 0, true, false, DisplayLoading},
		{"empty failed", 0, false, true, DisplayFailed},
		{"empty loading after failure", 0, true, true, DisplayLoading},
		{"empty idle", 0, false, false, DisplayGrid},
		{"photos loading", 3, true, false, DisplayGrid},
		{"photos failed", 3, false, true, DisplayGrid},
		{"photos loading and failed", 3, true, true, DisplayGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if tt.photos > 0 {
				p.FetchSucceeded(makePage(1, tt.photos), 1)
			}
			if tt.failed {
				p.FetchFailed()
			}
			if tt.loading {
				p.StartLoading()
			}
			assert.Equal(t, tt.want, p.Display())
		})
	}
}

func TestScenarioFirstPageThenSecondPage(t *testing.T) {
	p := New()

	page, _ := p.FetchNext()
	p.FetchSucceeded(makePage(page, 30), page)
	s := p.Snapshot()
	assert.Len(t, s.Photos, 30)
	assert.Equal(t, 2, s.NextPage)
	assert.False(t, s.Loading)
	assert.False(t, s.Error)

	page, _ = p.FetchNext()
	p.FetchSucceeded(makePage(page, 30), page)
	s = p.Snapshot()
	assert.Len(t, s.Photos, 60)
	assert.Equal(t, 3, s.NextPage)
}

func TestScenarioFirstPageFails(t *testing.T) {
	p := New()
	p.FetchNext()
	p.FetchFailed()

	s := p.Snapshot()
	assert.Empty(t, s.Photos)
	assert.Equal(t, 1, s.NextPage)
	assert.False(t, s.Loading)
	assert.True(t, s.Error)
	assert.Equal(t, DisplayFailed, p.Display())
}

func TestScenarioSecondPageFails(t *testing.T) {
	p := New()
	page, _ := p.FetchNext()
	p.FetchSucceeded(makePage(page, 30), page)

	p.FetchNext()
	p.FetchFailed()

	s := p.Snapshot()
	assert.Len(t, s.Photos, 30)
	assert.Equal(t, 2, s.NextPage)
	assert.False(t, s.Loading)
	assert.True(t, s.Error)
	assert.Equal(t, DisplayGrid, p.Display())
}

func TestSnapshotIsACopy(t *testing.T) {
	p := New()
	p.FetchSucceeded(makePage(1, 2), 1)

	s := p.Snapshot()
	s.Photos[0].Author = "changed"

	assert.Equal(t, "author", p.Photos()[0].Author)
}
