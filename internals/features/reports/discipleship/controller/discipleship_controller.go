package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/discipleship/dto"
	"haskenrayuwa_backend/internals/features/reports/discipleship/model"
	"haskenrayuwa_backend/internals/features/reports/discipleship/service"
	"haskenrayuwa_backend/internals/features/reports/ingest"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateDiscipleship = validator.New()

type DiscipleshipController struct {
	DB *gorm.DB
}

func NewDiscipleshipController(db *gorm.DB) *DiscipleshipController {
	return &DiscipleshipController{DB: db}
}

// =============================
// 📤 Upload Workbooks
// =============================
func (ctrl *DiscipleshipController) UploadDiscipleshipWorkbooks(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No files uploaded")
	}

	runner := ingest.NewRunner(ctrl.DB, "discipleship")
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
func (ctrl *DiscipleshipController) CreateDiscipleshipReport(c *fiber.Ctx) error {
	var body dto.CreateDiscipleshipReportRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscipleship.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := service.FromCreateRequest(body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	report, err := service.Insert(ctrl.DB, rec)
	if err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "A report with the same team, place and month already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create report")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToDiscipleshipReportDTO(report))
}

// =============================
// 📄 Get All Reports
// =============================
func (ctrl *DiscipleshipController) GetAllDiscipleshipReports(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	var reports []model.DiscipleshipReport
	if err := ctrl.DB.
		Order("discipleship_created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&reports).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reports")
	}

	return c.JSON(dto.ToDiscipleshipReportDTOs(reports))
}

// =============================
// 📅 Get Reports By Month
// =============================
func (ctrl *DiscipleshipController) GetDiscipleshipReportsByMonth(c *fiber.Ctx) error {
	month := ingest.NormalizeMonth(c.Params("month"))
	params := helper.ParsePaginationWith(c, helper.ExportOpts)

	var reports []model.DiscipleshipReport
	if err := ctrl.DB.
		Where("discipleship_month = ?", month).
		Order("discipleship_created_at DESC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&reports).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve reports")
	}
	if len(reports) == 0 {
		return fiber.NewError(fiber.StatusNotFound, "No reports found for month: "+month)
	}

	return c.JSON(dto.ToDiscipleshipReportDTOs(reports))
}

// =============================
// 🔍 Get Report By ID
// =============================
func (ctrl *DiscipleshipController) GetDiscipleshipReportByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var report model.DiscipleshipReport
	if err := ctrl.DB.First(&report, "discipleship_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return c.JSON(dto.ToDiscipleshipReportDTO(report))
}

// =============================
// 🔄 Partial Update
// =============================
func (ctrl *DiscipleshipController) UpdateDiscipleshipReport(c *fiber.Ctx) error {
	id := c.Params("id")

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var report model.DiscipleshipReport
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, "discipleship_id = ?", id).Error; err != nil {
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

	return c.JSON(dto.ToDiscipleshipReportDTO(report))
}

// =============================
// 🗑️ Delete Report By ID
// =============================
func (ctrl *DiscipleshipController) DeleteDiscipleshipReport(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.DiscipleshipReport{}, "discipleship_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete report")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}

	return helper.Success(c, "Report deleted successfully", fiber.Map{"discipleship_id": id})
}

// =============================
// 🗑️ Bulk Delete By Month
// =============================
func (ctrl *DiscipleshipController) DeleteDiscipleshipReportsByMonth(c *fiber.Ctx) error {
	month := ingest.NormalizeMonth(c.Params("month"))

	res := ctrl.DB.Where("discipleship_month = ?", month).Delete(&model.DiscipleshipReport{})
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
