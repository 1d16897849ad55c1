package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "madrasaku_backend/internals/features/attendance/model"
	feeModel "madrasaku_backend/internals/features/fees/model"
	feeService "madrasaku_backend/internals/features/fees/service"
	kitchenModel "madrasaku_backend/internals/features/kitchen/model"
	studentModel "madrasaku_backend/internals/features/students/model"
	studentService "madrasaku_backend/internals/features/students/service"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

// demoStudent is one synthetic enrollee; the seed set is fixed so demo
// tenants all look the same.
type demoStudent struct {
	Name    locale.Text
	Father  locale.Text
	Class   string
	Section string
	Phone   string
}

var demoStudents = []demoStudent{
	{
		Name:    locale.Text{En: "Ahmed Khan", Hi: "अहमद खान", Ur: "احمد خان"},
		Father:  locale.Text{En: "Rashid Khan", Hi: "राशिद खान", Ur: "راشد خان"},
		Class:   "Hifz 1",
		Section: "A",
		Phone:   "+91-9800000001",
	},
	{
		Name:    locale.Text{En: "Fatima Begum", Hi: "फ़ातिमा बेगम", Ur: "فاطمہ بیگم"},
		Father:  locale.Text{En: "Salim Ahmed", Hi: "सलीम अहमद", Ur: "سلیم احمد"},
		Class:   "Hifz 1",
		Section: "B",
		Phone:   "+91-9800000002",
	},
	{
		Name:    locale.Text{En: "Yusuf Ali", Hi: "यूसुफ़ अली", Ur: "یوسف علی"},
		Father:  locale.Text{En: "Hasan Ali", Hi: "हसन अली", Ur: "حسن علی"},
		Class:   "Nazra 2",
		Section: "A",
		Phone:   "+91-9800000003",
	},
	{
		Name:    locale.Text{En: "Zainab Siddiqui", Hi: "ज़ैनब सिद्दीक़ी", Ur: "زینب صدیقی"},
		Father:  locale.Text{En: "Imran Siddiqui", Hi: "इमरान सिद्दीक़ी", Ur: "عمران صدیقی"},
		Class:   "Nazra 2",
		Section: "A",
		Phone:   "+91-9800000004",
	},
	{
		Name:    locale.Text{En: "Bilal Ansari", Hi: "बिलाल अंसारी", Ur: "بلال انصاری"},
		Father:  locale.Text{En: "Tariq Ansari", Hi: "तारिक़ अंसारी", Ur: "طارق انصاری"},
		Class:   "Alim 1",
		Section: "A",
		Phone:   "+91-9800000005",
	},
	{
		Name:    locale.Text{En: "Maryam Shaikh", Hi: "मरियम शेख", Ur: "مریم شیخ"},
		Father:  locale.Text{En: "Javed Shaikh", Hi: "जावेद शेख", Ur: "جاوید شیخ"},
		Class:   "Alim 1",
		Section: "B",
		Phone:   "+91-9800000006",
	},
}

var demoKitchenItems = []struct {
	Name     locale.Text
	Quantity float64
	UnitCost float64
}{
	{locale.Text{En: "Rice", Hi: "चावल", Ur: "چاول"}, 25, 48},
	{locale.Text{En: "Lentils", Hi: "दाल", Ur: "دال"}, 10, 110},
	{locale.Text{En: "Cooking Oil", Hi: "खाना पकाने का तेल", Ur: "کھانا پکانے کا تیل"}, 5, 145},
	{locale.Text{En: "Vegetables", Hi: "सब्ज़ियाँ", Ur: "سبزیاں"}, 12, 35},
	{locale.Text{En: "Flour", Hi: "आटा", Ur: "آٹا"}, 20, 32},
}

const demoMonthlyFee = 500

// LoadDemoData inserts the synthetic dataset for one tenant inside the
// caller's transaction. Every row is flagged *_is_demo so Clear can tell it
// apart from real records.
func LoadDemoData(tx *gorm.DB, tenantID uuid.UUID) error {
	now := time.Now().UTC()
	year := now.Year()
	today := dbtime.Today()

	// Continue the tenant's code sequence so demo rows never collide with
	// real enrollments on uq_student_code.
	firstCode, err := studentService.NextStudentCode(tx, tenantID, year)
	if err != nil {
		return err
	}
	var baseSeq int
	if _, err := fmt.Sscanf(firstCode, "STU-%d-%d", &year, &baseSeq); err != nil {
		return err
	}

	students := make([]studentModel.StudentModel, 0, len(demoStudents))
	for i, d := range demoStudents {
		students = append(students, studentModel.StudentModel{
			StudentID:            uuid.New(),
			StudentTenantID:      tenantID,
			StudentCode:          studentService.FormatStudentCode(year, baseSeq+i),
			StudentName:          d.Name,
			StudentFatherName:    d.Father,
			StudentClass:         d.Class,
			StudentSection:       d.Section,
			StudentPhone:         d.Phone,
			StudentDOB:           dbtime.From(time.Date(year-10-i%4, time.Month(1+i*2%12), 5+i, 0, 0, 0, 0, time.UTC)),
			StudentAdmissionDate: dbtime.From(now.AddDate(0, -(i + 1), 0)),
			StudentStatus:        studentModel.StudentStatusActive,
			StudentIsDemo:        true,
		})
	}
	if err := tx.Create(&students).Error; err != nil {
		return err
	}

	// Last seven days of attendance, roughly one absence per student per week.
	attendance := make([]attendanceModel.AttendanceModel, 0, len(students)*7)
	for i, s := range students {
		for day := 0; day < 7; day++ {
			status := attendanceModel.AttendanceStatusPresent
			if day == i%7 {
				status = attendanceModel.AttendanceStatusAbsent
			}
			attendance = append(attendance, attendanceModel.AttendanceModel{
				AttendanceTenantID:  tenantID,
				AttendanceStudentID: s.StudentID,
				AttendanceDate:      dbtime.From(today.AddDate(0, 0, -day)),
				AttendanceStatus:    status,
				AttendanceIsDemo:    true,
			})
		}
	}
	if err := tx.Create(&attendance).Error; err != nil {
		return err
	}

	// Current and previous month fees; alternate fully paid / half paid.
	fees := make([]feeModel.FeeModel, 0, len(students)*2)
	for i, s := range students {
		for back := 0; back < 2; back++ {
			month, feeYear := monthsAgo(now, back)
			paid := demoMonthlyFee
			var paymentDate *dbtime.Date
			if (i+back)%2 == 1 {
				paid = demoMonthlyFee / 2
			} else {
				d := dbtime.From(time.Date(feeYear, time.Month(month), 1, 0, 0, 0, 0, time.UTC))
				paymentDate = &d
			}
			due := feeService.ComputeDue(demoMonthlyFee, paid)
			fees = append(fees, feeModel.FeeModel{
				FeeTenantID:    tenantID,
				FeeStudentID:   s.StudentID,
				FeeMonth:       month,
				FeeYear:        feeYear,
				FeeAmount:      demoMonthlyFee,
				FeePaidAmount:  paid,
				FeeDueAmount:   due,
				FeePaymentDate: paymentDate,
				FeePaymentMode: "Cash",
				FeeStatus:      feeService.DeriveStatus(due, ""),
				FeeIsDemo:      true,
			})
		}
	}
	if err := tx.Create(&fees).Error; err != nil {
		return err
	}

	expenses := make([]kitchenModel.KitchenExpenseModel, 0, len(demoKitchenItems))
	for i, item := range demoKitchenItems {
		expense := kitchenModel.KitchenExpenseModel{
			KitchenExpenseTenantID: tenantID,
			KitchenExpenseDate:     dbtime.From(today.AddDate(0, 0, -i)),
			KitchenExpenseItemName: item.Name,
			KitchenExpenseQuantity: item.Quantity,
			KitchenExpenseUnitCost: item.UnitCost,
			KitchenExpenseIsDemo:   true,
		}
		expense.ComputeTotal()
		expenses = append(expenses, expense)
	}
	return tx.Create(&expenses).Error
}

// monthsAgo returns the calendar (month, year) n months before t. AddDate on
// the current day-of-month is unsuitable: from a month-end day it normalizes
// forward (Oct 31 minus one month lands on Oct 1) and the fee keys collapse
// onto the same month.
func monthsAgo(t time.Time, n int) (month, year int) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -n, 0)
	return int(first.Month()), first.Year()
}

// ClearDemoData removes only rows flagged as demo for the tenant. Real
// records are never touched.
func ClearDemoData(tx *gorm.DB, tenantID uuid.UUID) error {
	if err := tx.
		Where("attendance_tenant_id = ? AND attendance_is_demo", tenantID).
		Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
		return err
	}
	if err := tx.
		Where("fee_tenant_id = ? AND fee_is_demo", tenantID).
		Delete(&feeModel.FeeModel{}).Error; err != nil {
		return err
	}
	if err := tx.
		Where("kitchen_expense_tenant_id = ? AND kitchen_expense_is_demo", tenantID).
		Delete(&kitchenModel.KitchenExpenseModel{}).Error; err != nil {
		return err
	}
	return tx.
		Where("student_tenant_id = ? AND student_is_demo", tenantID).
		Delete(&studentModel.StudentModel{}).Error
}

// CountDemoData reports how many demo rows each table holds for the tenant.
func CountDemoData(db *gorm.DB, tenantID uuid.UUID) (map[string]int, error) {
	counts := map[string]int{}
	tables := []struct {
		name  string
		where string
	}{
		{"students", "student_tenant_id = ? AND student_is_demo"},
		{"attendance", "attendance_tenant_id = ? AND attendance_is_demo"},
		{"fees", "fee_tenant_id = ? AND fee_is_demo"},
		{"kitchen_expenses", "kitchen_expense_tenant_id = ? AND kitchen_expense_is_demo"},
	}
	for _, t := range tables {
		var n int64
		if err := db.Table(t.name).Where(t.where, tenantID).Count(&n).Error; err != nil {
			return nil, err
		}
		counts[t.name] = int(n)
	}
	return counts, nil
}
