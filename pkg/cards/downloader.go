package cards

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sphaleron/json2hmc/pkg/logger"
	"github.com/tidwall/gjson"
)

// DefaultSourceURL serves the latest collectible cards in English.
const DefaultSourceURL = "https://api.hearthstonejson.com/v1/latest/enUS/cards.collectible.json"

// maxDownloadSize caps the response body; the full export is a few MB.
const maxDownloadSize = 64 << 20

// Downloader fetches card exports over HTTP.
type Downloader struct {
	client *resty.Client
	log    logger.Logger
}

// NewDownloader returns a Downloader with a 30s timeout. A nil log discards
// messages.
func NewDownloader(log logger.Logger) *Downloader {
	if log == nil {
		log = logger.Discard()
	}
	client := resty.New().
		SetTimeout(30*time.Second).
		SetRetryCount(2).
		SetHeader("User-Agent", "json2hmc").
		SetHeader("Accept", "application/json")
	return &Downloader{client: client, log: log}
}

// EnsureCards checks if the export exists at path. If not, it downloads it
// from url and stores it there.
func (d *Downloader) EnsureCards(ctx context.Context, path, url string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if url == "" {
		url = DefaultSourceURL
	}

	d.log.Info("Card data not found, downloading", "path", path, "url", url)
	resp, err := d.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return fmt.Errorf("download cards: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("download cards: %s", resp.Status())
	}
	return writeExport(path, body)
}

func writeExport(path string, body io.Reader) error {
	data, err := io.ReadAll(io.LimitReader(body, maxDownloadSize+1))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if len(data) > maxDownloadSize {
		return fmt.Errorf("response body exceeded maximum size limit of %d bytes", maxDownloadSize)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return fmt.Errorf("download cards: response is not a JSON array")
	}

	// Written next to the destination and renamed into place; a failed download
	// leaves nothing at path.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cards-*.json")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
