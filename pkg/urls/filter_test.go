package urls

import (
	"context"
	"fmt"
	"reflect"
	"testing"
)

// failingFilter always returns an error, for exercising error propagation
type failingFilter struct{}

func (f *failingFilter) ShouldKeep(ctx context.Context, url string) (bool, error) {
	return false, fmt.Errorf("boom")
}

func TestContainsFilter_ShouldKeep(t *testing.T) {
	filter := NewContainsFilter("detail_emission.php")
	ctx := context.Background()

	keep, err := filter.ShouldKeep(ctx, "http://example.com/page/detail_emission.php?emission=1")
	if err != nil {
		t.Fatalf("ShouldKeep failed: %v", err)
	}
	if !keep {
		t.Error("Expected URL with marker to be kept")
	}

	keep, err = filter.ShouldKeep(ctx, "http://example.com/page/liens.php")
	if err != nil {
		t.Fatalf("ShouldKeep failed: %v", err)
	}
	if keep {
		t.Error("Expected URL without marker to be dropped")
	}
}

func TestContainsFilter_EmptyMarkerKeepsEverything(t *testing.T) {
	filter := NewContainsFilter("")

	keep, err := filter.ShouldKeep(context.Background(), "http://example.com/anything")
	if err != nil {
		t.Fatalf("ShouldKeep failed: %v", err)
	}
	if !keep {
		t.Error("Expected empty marker to keep every URL")
	}
}

func TestFilterURLs_PreservesOrderAndDuplicates(t *testing.T) {
	input := []string{
		"http://example.com/page/detail_emission.php?emission=2",
		"http://example.com/page/index.php",
		"http://example.com/page/detail_emission.php?emission=1",
		"http://example.com/page/detail_emission.php?emission=2",
	}

	filtered, err := FilterURLs(context.Background(), input, NewContainsFilter("detail_emission.php"))
	if err != nil {
		t.Fatalf("FilterURLs failed: %v", err)
	}

	want := []string{
		"http://example.com/page/detail_emission.php?emission=2",
		"http://example.com/page/detail_emission.php?emission=1",
		"http://example.com/page/detail_emission.php?emission=2",
	}
	if !reflect.DeepEqual(filtered, want) {
		t.Errorf("Expected %v, got %v", want, filtered)
	}
}

func TestFilterURLs_NoFilters(t *testing.T) {
	input := []string{"http://example.com/a", "http://example.com/b"}

	filtered, err := FilterURLs(context.Background(), input)
	if err != nil {
		t.Fatalf("FilterURLs failed: %v", err)
	}
	if !reflect.DeepEqual(filtered, input) {
		t.Errorf("Expected all URLs kept, got %v", filtered)
	}
}

func TestFilterURLs_FilterError(t *testing.T) {
	_, err := FilterURLs(context.Background(), []string{"http://example.com/a"}, &failingFilter{})
	if err == nil {
		t.Fatal("Expected filter error to propagate, got nil")
	}
}
