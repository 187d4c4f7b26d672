package database

// Blank imports register every supported database/sql driver, so that
// importing this package is enough to address any of them by URL scheme:
//
//   - postgres://... and postgresql://... through pgx
//   - mysql://...                         through go-sql-driver
//   - sqlserver://... and mssql://...     through go-mssqldb
//   - sqlite://<path>                     through modernc.org/sqlite
import (
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/microsoft/go-mssqldb"
	_ "modernc.org/sqlite"
)
