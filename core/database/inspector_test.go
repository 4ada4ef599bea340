package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE customers (id INTEGER PRIMARY KEY, email TEXT NOT NULL, city TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "customers")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "PRI", colMap["id"].Key)
	assert.Equal(t, "text", colMap["email"].Type)
	assert.Equal(t, "NO", colMap["email"].Null)
	assert.Equal(t, "YES", colMap["city"].Null)

	// PRAGMA table_info returns an empty result for a non-existent table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT", "NO", "PRI", nil, "auto_increment").
		AddRow("Email", "VARCHAR(255)", "NO", "UNI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `customers`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "customers")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int", columns[0].Type)
	assert.Equal(t, "email", columns[1].Field)
	assert.Equal(t, "varchar(255)", columns[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE customers (id INTEGER PRIMARY KEY, email TEXT)").Error)

	missing, err := MissingColumns(db, "customers", []string{"id", "email", "city", "phone"})
	require.NoError(t, err)
	assert.Equal(t, []string{"city", "phone"}, missing)

	missing, err = MissingColumns(db, "customers", []string{"ID", "Email"})
	require.NoError(t, err)
	assert.Empty(t, missing)
}
