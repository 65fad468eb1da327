package excel

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survey.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestReadTableCSV(t *testing.T) {
	path := writeTempCSV(t, "姓名, 部门 ,题目一\n张三,研发, 总是如此 \n李四,,有时如此\n")
	reader := NewDataReader(path)

	table, err := reader.ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.ColumnCount() != 3 {
		t.Fatalf("expected 3 columns, got %d", table.ColumnCount())
	}
	// Headers and cells are trimmed.
	if table.Headers[1] != "部门" {
		t.Errorf("expected trimmed header 部门, got %q", table.Headers[1])
	}
	if table.Rows[0]["题目一"] != "总是如此" {
		t.Errorf("expected trimmed cell, got %q", table.Rows[0]["题目一"])
	}
	if table.Rows[1]["部门"] != "" {
		t.Errorf("expected empty department, got %q", table.Rows[1]["部门"])
	}
}

func TestReadTableRequiresDataRows(t *testing.T) {
	path := writeTempCSV(t, "姓名,题目一\n")
	reader := NewDataReader(path)

	if _, err := reader.ReadTable(); err == nil {
		t.Fatal("expected an error for a header-only file")
	}
}

func TestReadTableMissingFile(t *testing.T) {
	reader := NewDataReader(filepath.Join(t.TempDir(), "missing.csv"))
	if _, err := reader.ReadTable(); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestReadTableDuplicateHeaders(t *testing.T) {
	path := writeTempCSV(t, "姓名,题目一,题目一\n张三,总是如此,有时如此\n")
	reader := NewDataReader(path)

	table, err := reader.ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if table.Headers[2] != "题目一.1" {
		t.Fatalf("expected suffixed duplicate header, got %q", table.Headers[2])
	}
	if table.Rows[0]["题目一"] != "总是如此" {
		t.Errorf("first duplicate column lost its cell: %q", table.Rows[0]["题目一"])
	}
	if table.Rows[0]["题目一.1"] != "有时如此" {
		t.Errorf("second duplicate column lost its cell: %q", table.Rows[0]["题目一.1"])
	}
}

func TestReadTableShortRows(t *testing.T) {
	path := writeTempCSV(t, "姓名,题目一,题目二\n张三,总是如此\n")
	reader := NewDataReader(path)

	table, err := reader.ReadTable()
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	if _, ok := table.Rows[0]["题目二"]; ok {
		t.Error("short row should not carry the missing column key")
	}
}
