package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hammadi-dev/cartly-api/models"
	"gorm.io/gorm"
)

const defaultPageSize = 8

type ProductListResponse struct {
	Products    []models.Product `json:"products"`
	CurrentPage int              `json:"current_page"`
	TotalPages  int              `json:"total_pages"`
	TotalCount  int64            `json:"total_count"`
}

// clampPage normalizes page/page_size query values into usable bounds.
func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}

func totalPages(count int64, pageSize int) int {
	pages := int((count + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

// GET /products?category_id=&page=&page_size=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
		page, pageSize = clampPage(page, pageSize)

		query := db.Model(&models.Product{})

		if categoryID := c.Query("category_id"); categoryID != "" {
			cid, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(cid))
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.
			Order("created_at DESC").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, ProductListResponse{
			Products:    products,
			CurrentPage: page,
			TotalPages:  totalPages(count, pageSize),
			TotalCount:  count,
		})
	}
}
