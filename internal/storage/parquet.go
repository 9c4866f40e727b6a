package storage

import (
	"github.com/misterclayt0n/liftlog/internal/models"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

type workoutParquetRow struct {
	ID       string  `parquet:"name=id, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Exercise string  `parquet:"name=exercise, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	Reps     int64   `parquet:"name=reps, type=INT64"`
	Weight   float64 `parquet:"name=weight, type=DOUBLE"`
	Volume   float64 `parquet:"name=volume, type=DOUBLE"`
	DateMS   int64   `parquet:"name=date_ms, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
}

// ExportParquet encodes the log as a SNAPPY-compressed Parquet file.
func ExportParquet(workouts []models.Workout) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(workoutParquetRow), 4)
	if err != nil {
		return nil, err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, w := range workouts {
		row := workoutParquetRow{
			ID:       w.ID,
			Category: w.Category,
			Exercise: w.Exercise,
			Reps:     int64(w.Reps),
			Weight:   w.Weight,
			Volume:   w.Volume(),
			DateMS:   w.Date.UnixMilli(),
		}
		if err := pw.Write(row); err != nil {
			_ = pw.WriteStop()
			return nil, err
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, err
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}
