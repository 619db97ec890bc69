package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/clemthi/create-rss-feed/pkg/httpclient"
	"github.com/clemthi/create-rss-feed/pkg/sites"
	"github.com/clemthi/create-rss-feed/pkg/urls"
)

// newMrXTestServer mimics rendezvousavecmrx.free.fr: a listing page linking to
// detail pages, served with a windows-1252 charset declaration while the bytes
// are really UTF-8. That mismatch is what produces the mojibake the pipeline
// has to repair
func newMrXTestServer() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/page/liste.php", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, `<html><body>
			<a href="index.php">Accueil</a>
			<a href="detail_emission.php?emission=1">Affaire Farewell</a>
			<a href="detail_emission.php?emission=2">Réseau Gladio</a>
			<a href="liens.php">Liens</a>
		</body></html>`)
	})

	mux.HandleFunc("/page/detail_emission.php", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1252")
		switch r.URL.Query().Get("emission") {
		case "1":
			fmt.Fprint(w, `<html><body>
				<div id="titre">Affaire Farewell</div>
				<div id="emission">Un colonel du KGB livre à la France les secrets du renseignement soviétique.</div>
				<a href="../son/mrx_2004_03_06.mp3">mp3</a>
			</body></html>`)
		case "2":
			fmt.Fprint(w, `<html><body>
				<div id="titre">Réseau Gladio</div>
				<div id="emission">Les armées secrètes de l'OTAN pendant la guerre froide.</div>
				<a href="../son/mrx_2005_10_22.mp3">mp3</a>
			</body></html>`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return httptest.NewServer(mux)
}

func TestService_Run_Integration(t *testing.T) {
	server := newMrXTestServer()
	defer server.Close()

	site, err := sites.ForName("mrx")
	if err != nil {
		t.Fatalf("ForName failed: %v", err)
	}

	client := httpclient.NewClient(httpclient.WithRequestsPerSecond(100))
	fetcher := urls.NewHTMLFetcher(client, urls.NewContainsFilter(site.DetailMarker))
	service := NewService(fetcher, client, site.Extractor, zaptest.NewLogger(t))

	programs, err := service.Run(context.Background(), server.URL+"/page/liste.php")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(programs) != 2 {
		t.Fatalf("Expected 2 programs, got %d", len(programs))
	}

	// Most recent first
	first := programs[0]
	if first.Title != "Réseau Gladio" {
		t.Errorf("Expected mojibake-repaired title, got %q", first.Title)
	}
	if first.Description != "Les armées secrètes de l'OTAN pendant la guerre froide." {
		t.Errorf("Expected mojibake-repaired description, got %q", first.Description)
	}
	if first.Link != server.URL+"/son/mrx_2005_10_22.mp3" {
		t.Errorf("Expected absolute audio link, got %q", first.Link)
	}
	if first.Date != "2005-10-22" {
		t.Errorf("Expected date derived from the filename, got %q", first.Date)
	}

	second := programs[1]
	if second.Title != "Affaire Farewell" {
		t.Errorf("Unexpected second program: %q", second.Title)
	}
	if second.Date != "2004-03-06" {
		t.Errorf("Unexpected second date: %q", second.Date)
	}
}

func TestService_Run_Integration_ListingNotFound(t *testing.T) {
	server := newMrXTestServer()
	defer server.Close()

	site, err := sites.ForName("mrx")
	if err != nil {
		t.Fatalf("ForName failed: %v", err)
	}

	client := httpclient.NewClient()
	fetcher := urls.NewHTMLFetcher(client, urls.NewContainsFilter(site.DetailMarker))
	service := NewService(fetcher, client, site.Extractor, zaptest.NewLogger(t))

	_, err = service.Run(context.Background(), server.URL+"/page/inconnue.php")
	if err == nil {
		t.Fatal("Expected error for unknown listing page, got nil")
	}
}
