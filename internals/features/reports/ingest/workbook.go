package ingest

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const uploadDirectory = "./uploads"

// SaveUpload writes the uploaded file under a random name in the upload
// directory. The caller owns cleanup via RemoveUpload.
func SaveUpload(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(uploadDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	ext := filepath.Ext(fh.Filename)
	if ext == "" {
		ext = ".xlsx"
	}
	path := filepath.Join(uploadDirectory, uuid.NewString()+ext)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	return path, nil
}

// RemoveUpload discards a transient source file. Uploads are never retained
// once parsed, whether processing succeeded or not.
func RemoveUpload(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("[WARN] could not remove upload %s: %v", path, err)
	}
}

// ParseWorkbook reads the first sheet of an xlsx file into rows keyed by
// the header labels on row 1.
func ParseWorkbook(path, originalName string) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(raw) < 2 {
		return nil, nil
	}

	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		record := make(map[string]string, len(headers))
		blank := true
		for j, h := range headers {
			if h == "" {
				continue
			}
			var v string
			if j < len(cells) {
				v = strings.TrimSpace(cells[j])
			}
			record[h] = v
			if v != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		rows = append(rows, NewRow(i+2, originalName, record))
	}
	return rows, nil
}
