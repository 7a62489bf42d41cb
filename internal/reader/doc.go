// Package reader loads flat records from files and databases.
//
// Every loader returns []table.Record: an ordered list of key/value fields per
// record, so that column order survives into the inferred schema. Supported
// sources:
//
//   - JSON: an array of flat objects (.json)
//   - CSV: a header row followed by data rows (.csv)
//   - Parquet: any flat parquet file (.parquet)
//   - SQL: a table in SQLite (.db, .sqlite, .sqlite3), PostgreSQL or MySQL
//
// # Basic Usage
//
//	records, err := reader.Open("cities.json", reader.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tbl, err := table.New(records)
//
// # Multiple Files
//
// Load and ReadGlob accept a glob pattern. Records of every match are
// concatenated and tagged with a "_file" column:
//
//	tbl, err := reader.Load("data/2024-*.csv", reader.Options{})
//
// # Databases
//
//	records, err := reader.ReadSQL(ctx, "postgres", dsn, "cities")
package reader
