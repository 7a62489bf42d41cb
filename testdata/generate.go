package main

import (
	"log"
	"os"

	"github.com/segmentio/parquet-go"
)

// City is one record of the sample dataset. AREA is optional so the file
// exercises missing values.
type City struct {
	City    string   `parquet:"CITY"`
	Pop     int64    `parquet:"POP"`
	Area    *float64 `parquet:"AREA,optional"`
	Country string   `parquet:"COUNTRY"`
}

func area(v float64) *float64 {
	return &v
}

func main() {
	cities := []City{
		{City: "Lisbon", Pop: 545923, Area: area(100.05), Country: "PT"},
		{City: "Porto", Pop: 231800, Country: "PT"},
		{City: "Oslo", Pop: 709037, Area: area(454.0), Country: "NO"},
		{City: "Bergen", Pop: 291940, Area: area(464.7), Country: "NO"},
		{City: "Tartu", Pop: 97759, Country: "EE"},
	}

	file, err := os.Create("cities.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[City](file)
	defer writer.Close()

	if _, err := writer.Write(cities); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated cities.parquet with 5 cities")
}
