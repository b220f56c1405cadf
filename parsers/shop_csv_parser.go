package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
)

// ParsedShopCSVRecord is one row of the shop master CSV.
type ParsedShopCSVRecord struct {
	ShopID   string
	ShopName string
	Location string
	Phone    string
}

// ParseShopCSV parses the shop master CSV. Rows without a shop_id are
// skipped with a warning rather than failing the whole import.
func ParseShopCSV(r io.Reader) ([]ParsedShopCSVRecord, error) {
	reader := csv.NewReader(DecodeMasterCSV(r))
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("shop CSV is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read shop CSV header: %w", err)
	}

	requiredHeaders := []string{"shop_id", "shop_name"}
	colIndex, err := getColIndex(header, requiredHeaders)
	if err != nil {
		return nil, err
	}

	var records []ParsedShopCSVRecord
	line := 1

	for {
		line++
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("WARN: shop CSV line %d read error (skipped): %v", line, err)
			continue
		}

		get := func(key string) string {
			if idx, ok := colIndex[key]; ok && idx < len(rec) {
				return strings.TrimSpace(rec[idx])
			}
			return ""
		}

		shopID := get("shop_id")
		if shopID == "" {
			log.Printf("WARN: shop CSV line %d has no shop_id (skipped)", line)
			continue
		}

		records = append(records, ParsedShopCSVRecord{
			ShopID:   shopID,
			ShopName: get("shop_name"),
			Location: get("location"),
			Phone:    get("phone"),
		})
	}

	return records, nil
}
