package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `name,email,phone_number
Amy,amy@cafe.my,+60123456789
Ben,ben@cafe.my,0198765432
Cara,,60112223334
Dan,not-an-email,60112223335
Eve,eve@cafe.my,
`

func TestParseCustomerFileCSV(t *testing.T) {
	result, err := ParseCustomerFile("upload.csv", strings.NewReader(sampleCSV), "b1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Data, 2)

	assert.Equal(t, "Amy", result.Data[0].Name)
	assert.Equal(t, "amy@cafe.my", result.Data[0].Email)
	// The leading + is stripped for the bulk endpoint.
	assert.Equal(t, "60123456789", result.Data[0].PhoneNumber)
	assert.Equal(t, "b1", result.Data[0].BusinessID)
	assert.Equal(t, "0198765432", result.Data[1].PhoneNumber)

	// Row numbers count the header row: the first data row is row 2.
	require.Len(t, result.Errors, 3)
	assert.Equal(t, "Row 4: missing email", result.Errors[0])
	assert.Equal(t, "Row 5: invalid email format", result.Errors[1])
	assert.Equal(t, "Row 6: missing phone number", result.Errors[2])
}

func TestParseCustomerFileMissingName(t *testing.T) {
	csv := "name,email,phone\n,amy@cafe.my,60123456789\n"
	result, err := ParseCustomerFile("upload.csv", strings.NewReader(csv), "b1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Empty(t, result.Data)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 2: missing name", result.Errors[0])
}

func TestParseCustomerFileEmpty(t *testing.T) {
	result, err := ParseCustomerFile("upload.csv", strings.NewReader(""), "b1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"CSV file is empty"}, result.Errors)
}

func TestParseCustomerFileHeaderOnly(t *testing.T) {
	result, err := ParseCustomerFile("upload.csv", strings.NewReader("name,email,phone\n"), "b1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	assert.Equal(t, []string{"CSV file is empty"}, result.Errors)
}

func TestParseCustomerFileMissingColumns(t *testing.T) {
	result, err := ParseCustomerFile("upload.csv", strings.NewReader("name,email\nAmy,amy@cafe.my\n"), "b1")
	require.NoError(t, err)

	assert.False(t, result.Success)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "missing required column(s)")
	assert.Contains(t, result.Errors[0], "phone")
}

func TestParseCustomerFilePhoneHeaderVariants(t *testing.T) {
	for _, header := range []string{"phone_number", "Phone Number", "PHONE"} {
		csv := "name,email," + header + "\nAmy,amy@cafe.my,60123456789\n"
		result, err := ParseCustomerFile("upload.csv", strings.NewReader(csv), "b1")
		require.NoError(t, err, "header %q", header)
		assert.True(t, result.Success, "header %q", header)
		require.Len(t, result.Data, 1, "header %q", header)
		assert.Equal(t, "60123456789", result.Data[0].PhoneNumber)
	}
}

func TestParseCustomerFileXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]any{
		{"name", "email", "phone"},
		{"Amy", "amy@cafe.my", "+60123456789"},
		{"", "ben@cafe.my", "60198765432"},
	}
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	result, err := ParseCustomerFile("upload.xlsx", &buf, "b1")
	require.NoError(t, err)

	assert.True(t, result.Success)
	require.Len(t, result.Data, 1)
	assert.Equal(t, "60123456789", result.Data[0].PhoneNumber)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Row 3: missing name", result.Errors[0])
}

func TestParseCustomerFileUnreadableWorkbook(t *testing.T) {
	_, err := ParseCustomerFile("upload.xlsx", strings.NewReader("not a zip"), "b1")
	require.Error(t, err)
}
