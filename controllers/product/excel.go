package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Import sheet layout: ID | Name | Description | Price | StockQuantity | SKU | Brand | CategoryID | ImageURL

func ImportProductsFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}
		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			description := get(2)
			priceStr := get(3)
			stockStr := get(4)
			sku := get(5)
			brand := get(6)
			categoryIDStr := get(7)
			imageURL := get(8)

			if name == "" || priceStr == "" {
				skippedCount++
				continue
			}
			price, err := decimal.NewFromString(priceStr)
			if err != nil || price.LessThanOrEqual(decimal.Zero) {
				skippedCount++
				continue
			}
			stock, err := strconv.Atoi(stockStr)
			if err != nil || stock < 0 {
				stock = 0
			}
			var categoryID uint
			if categoryIDStr != "" {
				if cid, err := strconv.ParseUint(categoryIDStr, 10, 64); err == nil {
					categoryID = uint(cid)
				}
			}

			var existing models.Product
			lookupErr := gorm.ErrRecordNotFound
			if idStr != "" {
				lookupErr = db.First(&existing, "id = ?", idStr).Error
			} else if sku != "" {
				lookupErr = db.First(&existing, "sku = ?", sku).Error
			}

			if lookupErr == nil {
				existing.Name = name
				existing.Description = description
				existing.Price = price
				existing.StockQuantity = stock
				existing.SKU = sku
				existing.Brand = brand
				existing.CategoryID = categoryID
				existing.ImageURL = imageURL
				if err := db.Save(&existing).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			product := models.Product{
				Name:          name,
				Description:   description,
				Price:         price,
				StockQuantity: stock,
				SKU:           sku,
				Brand:         brand,
				CategoryID:    categoryID,
				ImageURL:      imageURL,
			}
			if err := db.Create(&product).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}

func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Description", "Price", "StockQuantity",
			"SKU", "Brand", "CategoryID", "ImageURL", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(p.SKU)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.CategoryID)
			row.AddCell().SetValue(p.ImageURL)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
