package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/filmshow/dto"
	"haskenrayuwa_backend/internals/features/reports/filmshow/model"
	"haskenrayuwa_backend/internals/features/reports/filmshow/service"
	"haskenrayuwa_backend/internals/features/reports/ingest"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateFilmShow = validator.New()

type FilmShowController struct {
	DB *gorm.DB
}

func NewFilmShowController(db *gorm.DB) *FilmShowController {
	return &FilmShowController{DB: db}
}

// =============================
// 📤 Upload Workbooks
// =============================
// Rows are processed strictly in order: two rows in one file may share a
// natural key (a correction after its draft) and the later one must be
// reconciled against the earlier one's effects. The batch always answers
// 200; row-level trouble lives inside the summary.
func (ctrl *FilmShowController) UploadFilmShowWorkbooks(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No files uploaded")
	}

	runner := ingest.NewRunner(ctrl.DB, "filmshow")
	summary := runner.ProcessFiles(files, func(row ingest.Row) (ingest.Outcome, error) {
		rec, err := service.NormalizeRow(row)
		if err != nil {
			return 0, err
		}
		var outcome ingest.Outcome
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			outcome, err = service.Upsert(tx, rec)
			return err
		})
		return outcome, err
	})

	return c.Status(fiber.StatusOK).JSON(summary)
}

// =============================
// ➕ Create Report (manual entry)
// =============================
func (ctrl *FilmShowController) CreateFilmShowReport(c *fiber.Ctx) error {
	var body dto.CreateFilmShowReportRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateFilmShow.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := service.FromCreateRequest(body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	report, err := service.Insert(ctrl.DB, rec)
	if err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "A report with the same team, place and date already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create report")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToFilmShowReportDTO(report))
}

// =============================
// 📄 Get All Reports
// =============================
func (ctrl *FilmShowController) GetAllFilmShowReports(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	var reports []model.FilmShowReport
	if err := ctrl.DB.
		Order("film_show_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&reports).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	return c.JSON(dto.ToFilmShowReportDTOs(reports))
}

// =============================
// 📅 Get Reports By Month
// =============================
func (ctrl *FilmShowController) GetFilmShowReportsByMonth(c *fiber.Ctx) error {
	month := ingest.NormalizeMonth(c.Params("month"))
	params := helper.ParsePaginationWith(c, helper.ExportOpts)

	var reports []model.FilmShowReport
	if err := ctrl.DB.
		Where("film_show_month = ?", month).
		Order("film_show_date DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&reports).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reports")
	}
	if len(reports) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No reports found for month: "+month)
	}

	return c.JSON(dto.ToFilmShowReportDTOs(reports))
}

// =============================
// 🔍 Get Report By ID
// =============================
func (ctrl *FilmShowController) GetFilmShowReportByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var report model.FilmShowReport
	if err := ctrl.DB.First(&report, "film_show_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return c.JSON(dto.ToFilmShowReportDTO(report))
}

// =============================
// 🔄 Partial Update
// =============================
func (ctrl *FilmShowController) UpdateFilmShowReport(c *fiber.Ctx) error {
	id := c.Params("id")

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var report model.FilmShowReport
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "film_show_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Report not found")
			}
			return err
		}
		if err := service.ApplyUpdates(&report, updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return tx.Save(&report).Error
	})
	if err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Update collides with an existing report's natural key")
		}
		return helper.FromFiberError(c, err)
	}

	return c.JSON(dto.ToFilmShowReportDTO(report))
}

// =============================
// 🗑️ Delete Report By ID
// =============================
func (ctrl *FilmShowController) DeleteFilmShowReport(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.FilmShowReport{}, "film_show_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete report")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return helper.Success(c, "Report deleted successfully", fiber.Map{"film_show_id": id})
}

// =============================
// 🗑️ Bulk Delete By Month
// =============================
// Deleting a month nobody reported is a 404, not a zero-count success.
func (ctrl *FilmShowController) DeleteFilmShowReportsByMonth(c *fiber.Ctx) error {
	month := ingest.NormalizeMonth(c.Params("month"))

	res := ctrl.DB.Where("film_show_month = ?", month).Delete(&model.FilmShowReport{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete reports")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No reports found for month: "+month)
	}

	return helper.Success(c, "All reports for month "+month+" deleted successfully", fiber.Map{
		"count": res.RowsAffected,
	})
}
