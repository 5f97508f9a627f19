package utils

import (
	"compress/gzip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"
)

type Document struct {
	Title string `xml:"title"`
	URL   string `xml:"url"`
	Text  string `xml:"abstract"`
	ID    int    `xml:"-"`
}

// StreamDocuments decodes <doc> elements from a Wikipedia abstract dump,
// gzip'd when path ends in ".gz". Both channels are closed when decoding
// stops, and errCh carries at most one error, so the channels may be drained
// one after the other. Decoding stops at the first malformed <doc>.
func StreamDocuments(ctx context.Context, path string) (<-chan Document, <-chan error) {
	out := make(chan Document, 100)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		if err := decodeFile(ctx, path, out); err != nil {
			errCh <- err
		}
	}()

	return out, errCh
}

func decodeFile(ctx context.Context, path string, out chan<- Document) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return fmt.Errorf("gzip %s: %w", path, gzErr)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(gz))
		r = gz
	}
	return decodeDocuments(ctx, r, out)
}

func decodeDocuments(ctx context.Context, r io.Reader, out chan<- Document) error {
	dec := xml.NewDecoder(r)
	var id int

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "doc" {
			continue
		}
		var doc Document
		// xml.Decoder errors are sticky, nothing after a bad element decodes.
		if err := dec.DecodeElement(&doc, &se); err != nil {
			return fmt.Errorf("doc %d: %w", id, err)
		}
		doc.ID = id
		id++

		select {
		case out <- doc:
		case <-ctx.Done():
			return nil
		}
	}
}

// LoadDocuments reads the whole dump into memory. Documents decoded before an
// error are still returned alongside it.
func LoadDocuments(ctx context.Context, path string) ([]Document, error) {
	docCh, errCh := StreamDocuments(ctx, path)
	var docs []Document
	var err error

	for docCh != nil || errCh != nil {
		select {
		case doc, ok := <-docCh:
			if !ok {
				docCh = nil
				continue
			}
			docs = append(docs, doc)
		case e, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			err = multierr.Append(err, e)
		}
	}
	return docs, err
}
