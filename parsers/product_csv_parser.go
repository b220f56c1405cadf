package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// ParsedProductCSVRecord is one row of the product master CSV.
type ParsedProductCSVRecord struct {
	ProductID   string
	ProductName string
	Brand       string
	Grade       string
	BagWeightKg float64
	UnitPrice   float64
}

// ParseProductCSV parses the product master CSV (supplier price lists use
// the same layout).
func ParseProductCSV(r io.Reader) ([]ParsedProductCSVRecord, error) {
	reader := csv.NewReader(DecodeMasterCSV(r))
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("product CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read product CSV header: %w", err)
	}

	requiredHeaders := []string{"product_id", "product_name"}
	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	var records []ParsedProductCSVRecord
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: product CSV line %d read error (skipped): %v", line, err)
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}
		getFloat := func(key string) float64 {
			s := get(key)
			if s == "" {
				return 0
			}
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				log.Printf("WARN: product CSV line %d has invalid %s %q (treated as 0)", line, key, s)
				return 0
			}
			return v
		}

		productID := get("product_id")
		if productID == "" {
			log.Printf("WARN: product CSV line %d has no product_id (skipped)", line)
			continue
		}

		records = append(records, ParsedProductCSVRecord{
			ProductID:   productID,
			ProductName: get("product_name"),
			Brand:       get("brand"),
			Grade:       get("grade"),
			BagWeightKg: getFloat("bag_weight_kg"),
			UnitPrice:   getFloat("unit_price"),
		})
	}

	return records, nil
}
