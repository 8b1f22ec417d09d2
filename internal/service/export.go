package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/lvicens/blanca-med/backend/config"
	"github.com/lvicens/blanca-med/backend/internal/search"
)

const exportURLExpiry = 15 * time.Minute

// ExportService renders full dataset dumps as CSV and stages them in S3.
// It always receives the complete record set from the store's export read
// path, never a filtered result.
type ExportService struct {
	s3Config *config.S3Config
}

func NewExportService(s3Config *config.S3Config) *ExportService {
	return &ExportService{s3Config: s3Config}
}

// ExportCSV uploads a CSV dump of the records and returns a presigned
// download URL
func (s *ExportService) ExportCSV(ctx context.Context, records []search.Record) (string, error) {
	data, err := RenderCSV(records)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/allergens-%s.csv", uuid.New().String())
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}

	return s.s3Config.GeneratePresignedURL(ctx, key, exportURLExpiry)
}

// RenderCSV serializes records into the export format
func RenderCSV(records []search.Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"name", "category", "is_allergic", "intensity", "kua_per_liter"}); err != nil {
		return nil, err
	}

	for _, r := range records {
		kua := ""
		if r.KUAPerLiter != nil {
			kua = strconv.FormatFloat(*r.KUAPerLiter, 'f', -1, 64)
		}
		row := []string{
			r.Name,
			r.Category,
			strconv.FormatBool(r.Allergic),
			string(r.Intensity),
			kua,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
