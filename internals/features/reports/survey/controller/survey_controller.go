package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"haskenrayuwa_backend/internals/features/reports/ingest"
	"haskenrayuwa_backend/internals/features/reports/region"
	"haskenrayuwa_backend/internals/features/reports/survey/dto"
	"haskenrayuwa_backend/internals/features/reports/survey/model"
	"haskenrayuwa_backend/internals/features/reports/survey/service"
	helper "haskenrayuwa_backend/internals/helpers"
)

var validateSurvey = validator.New()

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

// =============================
// 📤 Upload Workbooks
// =============================
// Same discipline as the other report kinds: strictly sequential rows,
// per-row transactions, batch always answers 200 with a summary.
func (ctrl *SurveyController) UploadSurveyWorkbooks(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid multipart form")
	}
	files := form.File["files"]
	if len(files) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No files uploaded")
	}

	runner := ingest.NewRunner(ctrl.DB, "survey")
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
// ➕ Create Record (manual entry)
// =============================
func (ctrl *SurveyController) CreateSurveyRecord(c *fiber.Ctx) error {
	var body dto.CreateSurveyRecordRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSurvey.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec, err := service.FromCreateRequest(body)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	record, err := service.Insert(ctrl.DB, rec)
	if err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "A survey for this village already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create survey record")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToSurveyRecordDTO(record))
}

// =============================
// 📄 Get Records (+totals)
// =============================
// The list answer carries aggregate sums scoped to the same filter as the
// page, so the dashboard renders state-wide figures without a second call.
func (ctrl *SurveyController) GetSurveyRecords(c *fiber.Ctx) error {
	params := helper.ParsePagination(c)

	stateFilter := ""
	if raw := c.Query("state"); raw != "" {
		state, err := region.Normalize(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		stateFilter = string(state)
	}

	filtered := func() *gorm.DB {
		q := ctrl.DB.Model(&model.SurveyRecord{})
		if stateFilter != "" {
			q = q.Where("survey_state = ?", stateFilter)
		}
		return q
	}

	var records []model.SurveyRecord
	if err := filtered().
		Order("survey_state ASC, survey_village ASC").
		Offset(params.Offset()).
		Limit(params.PerPage).
		Find(&records).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve survey records")
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count survey records")
	}

	totals, err := service.Totals(filtered())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to aggregate survey totals")
	}

	return c.JSON(fiber.Map{
		"records":  dto.ToSurveyRecordDTOs(records),
		"total":    total,
		"page":     params.Page,
		"per_page": params.PerPage,
		"totals":   totals,
	})
}

// =============================
// 📄 Get Surveyed States
// =============================
func (ctrl *SurveyController) GetSurveyedStates(c *fiber.Ctx) error {
	var states []string
	if err := ctrl.DB.
		Model(&model.SurveyRecord{}).
		Distinct("survey_state").
		Order("survey_state ASC").
		Pluck("survey_state", &states).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve states")
	}

	return c.JSON(fiber.Map{"states": states})
}

// =============================
// 🔍 Get Record By ID
// =============================
func (ctrl *SurveyController) GetSurveyRecordByID(c *fiber.Ctx) error {
	id := c.Params("id")

	var record model.SurveyRecord
	if err := ctrl.DB.First(&record, "survey_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Survey record not found")
	}

	return c.JSON(dto.ToSurveyRecordDTO(record))
}

// =============================
// 🔄 Partial Update
// =============================
func (ctrl *SurveyController) UpdateSurveyRecord(c *fiber.Ctx) error {
	id := c.Params("id")

	var updates map[string]interface{}
	if err := c.BodyParser(&updates); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	var record model.SurveyRecord
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, "survey_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Survey record not found")
			}
			return err
		}
		if err := service.ApplyUpdates(&record, updates); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return tx.Save(&record).Error
	})
	if err != nil {
		if ingest.IsDuplicateKey(err) {
			return fiber.NewError(fiber.StatusConflict, "Update collides with an existing village's survey")
		}
		return helper.FromFiberError(c, err)
	}

	return c.JSON(dto.ToSurveyRecordDTO(record))
}

// =============================
// 🗑️ Delete Record By ID
// =============================
func (ctrl *SurveyController) DeleteSurveyRecord(c *fiber.Ctx) error {
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.SurveyRecord{}, "survey_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete survey record")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Survey record not found")
	}

	return helper.Success(c, "Survey record deleted successfully", fiber.Map{"survey_id": id})
}
