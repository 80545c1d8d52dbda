package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/bizbudz/bizbudz/store"
	"github.com/bizbudz/bizbudz/utils"
)

// CatalogController serves the static learning catalog backing the
// dashboards: courses, quizzes and downloadable materials.
type CatalogController struct {
	catalog store.Catalog
}

// NewCatalogController creates a CatalogController over a fixed catalog.
func NewCatalogController(catalog store.Catalog) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// ListCourses returns all learning tracks.
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"courses": c.catalog.Courses})
}

// ListQuizzes returns all quizzes across courses.
func (c *CatalogController) ListQuizzes(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"quizzes": c.catalog.Quizzes})
}

// ListMaterials returns all downloadable resources.
func (c *CatalogController) ListMaterials(ctx *gin.Context) {
	utils.Success(ctx, gin.H{"materials": c.catalog.Materials})
}
