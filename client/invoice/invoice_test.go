package invoice

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"stockroom/client/inventory"
)

var company = Company{Name: "Masala Company Pvt Ltd", Address: "123, Street Name, City, Country"}

func fixtureSales() []inventory.Sale {
	return []inventory.Sale{
		{
			ID:           "s1",
			ProductName:  "Basmati Rice",
			ProductPrice: 12.5,
			BuyerName:    "Ann",
			Quantity:     2,
			TotalPrice:   25,
			Date:         time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           "s2",
			ProductName:  "Lentils, red",
			ProductPrice: 4,
			BuyerName:    "Bo Chen",
			Quantity:     10,
			TotalPrice:   40,
			Date:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		},
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRenderText(t *testing.T) {
	r := NewRenderer(company, language.English)

	var buf bytes.Buffer
	require.NoError(t, r.RenderText(&buf, fixtureSales()[0]))

	newGoldie(t).Assert(t, "invoice_text", buf.Bytes())
}

func TestWriteReport(t *testing.T) {
	testCases := []struct {
		name   string
		format Format
		golden string
	}{
		{name: "text", format: FormatText, golden: "report_text"},
		{name: "csv", format: FormatCSV, golden: "report_csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRenderer(company, language.English)

			var buf bytes.Buffer
			require.NoError(t, r.WriteReport(&buf, fixtureSales(), tc.format))

			newGoldie(t).Assert(t, tc.golden, buf.Bytes())
		})
	}
}

func TestWriteReportUnknownFormat(t *testing.T) {
	r := NewRenderer(company, language.English)

	err := r.WriteReport(&bytes.Buffer{}, fixtureSales(), "pdf")

	assert.EqualError(t, err, `unknown report format "pdf"`)
}

func TestRenderHTML(t *testing.T) {
	r := NewRenderer(company, language.English)
	sale := fixtureSales()[0]
	sale.BuyerName = "<b>Ann</b>"

	var buf bytes.Buffer
	require.NoError(t, r.RenderHTML(&buf, sale))

	out := buf.String()
	assert.Contains(t, out, "<h1>Masala Company Pvt Ltd</h1>")
	assert.Contains(t, out, "<tr><th>Product</th><td>Basmati Rice</td></tr>")
	assert.Contains(t, out, "<tr><th>Quantity</th><td>2</td></tr>")
	assert.Contains(t, out, "<tr><th>Total</th><td>25.00</td></tr>")
	assert.Contains(t, out, "<tr><th>Date</th><td>2024-03-01</td></tr>")
	assert.Contains(t, out, "&lt;b&gt;Ann&lt;/b&gt;")
	assert.NotContains(t, out, "<b>Ann</b>")
}

func TestMoney(t *testing.T) {
	testCases := []struct {
		name     string
		lang     language.Tag
		value    float64
		expected string
	}{
		{name: "two_decimals", lang: language.English, value: 4, expected: "4.00"},
		{name: "grouped", lang: language.English, value: 1234.5, expected: "1,234.50"},
		{name: "undetermined_falls_back_to_english", lang: language.Und, value: 1234.5, expected: "1,234.50"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, NewRenderer(company, tc.lang).Money(tc.value))
		})
	}
}
