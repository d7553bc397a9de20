package roster

import (
	"bytes"
	"strings"
	"testing"

	"github.com/awash-hr/job-portal/internal/domain/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxFile(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cellName, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadRowsCSV(t *testing.T) {
	input := "\ufeffEmployee ID,Full Name,Department,email\n" +
		" AIB/1/2020 , Abebe Kebede ,Finance,\n" +
		",,,\n" +
		"AIB/2/2021,Sara Alemu\n"

	rows, err := ReadRows("roster.CSV", strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "AIB/1/2020", rows[0].EmployeeID)
	assert.Equal(t, "Abebe Kebede", rows[0].FullName)
	require.NotNil(t, rows[0].Department)
	assert.Equal(t, "Finance", *rows[0].Department)
	assert.Nil(t, rows[0].Email, "blank cells are absent")
	assert.Nil(t, rows[0].Phone, "missing column")
	assert.Equal(t, 2, rows[0].Line)

	assert.Equal(t, "Sara Alemu", rows[1].FullName)
	assert.Nil(t, rows[1].Department, "short row")
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadRowsXLSX(t *testing.T) {
	buf := xlsxFile(t,
		[]any{"employee_id", "full_name", "phone"},
		[]any{"E-10", "Hana Girma", "+251911223344"},
		[]any{"E-11", "Dawit Bekele"},
	)

	rows, err := ReadRows("employees.xlsx", buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "E-10", rows[0].EmployeeID)
	require.NotNil(t, rows[0].Phone)
	assert.Equal(t, "+251911223344", *rows[0].Phone)
	assert.Equal(t, "Dawit Bekele", rows[1].FullName)
	assert.Nil(t, rows[1].Phone)
}

func TestReadRowsRejects(t *testing.T) {
	_, err := ReadRows("roster.txt", strings.NewReader("employee_id,full_name\n"))
	assert.ErrorIs(t, err, roster.ErrUnsupportedFormat)

	_, err = ReadRows("roster.csv", strings.NewReader(""))
	assert.ErrorIs(t, err, roster.ErrEmptyRosterFile)

	_, err = ReadRows("roster.csv", strings.NewReader("full_name\nAbebe\n"))
	assert.ErrorIs(t, err, roster.ErrMissingEmployeeID)

	_, err = ReadRows("roster.csv", strings.NewReader("employee_id,name\nE-1,Abebe\n"))
	assert.ErrorIs(t, err, roster.ErrMissingFullName)

	_, err = ReadRows("roster.csv", strings.NewReader("employee_id,full_name\nE-1,\n,Sara\nE 3,Dawit\n"))
	require.ErrorIs(t, err, roster.ErrInvalidRow)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "line 4")
}
