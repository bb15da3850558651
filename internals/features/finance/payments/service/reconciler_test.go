// internals/features/finance/payments/service/reconciler_test.go
package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	sModel "bimbelku_backend/internals/features/academics/students/model"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
	"bimbelku_backend/internals/features/finance/payments/service"
	helper "bimbelku_backend/internals/helpers"
	"bimbelku_backend/internals/testutil"
)

func newStudent(t *testing.T, db *gorm.DB, status sModel.PaymentStatus) sModel.StudentModel {
	t.Helper()
	s := sModel.StudentModel{
		StudentFullName:      "Budi Santoso",
		StudentJoinDate:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		StudentPaymentStatus: status,
	}
	require.NoError(t, db.Create(&s).Error)
	return s
}

func newPayment(studentID uuid.UUID, month string) pModel.PaymentModel {
	return pModel.PaymentModel{
		PaymentStudentID: studentID,
		PaymentAmount:    350000,
		PaymentMonth:     month,
		PaymentDate:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		PaymentMethod:    pModel.PaymentMethodCash,
	}
}

func studentStatus(t *testing.T, db *gorm.DB, id uuid.UUID) sModel.PaymentStatus {
	t.Helper()
	var s sModel.StudentModel
	require.NoError(t, db.First(&s, "student_id = ?", id).Error)
	return s.StudentPaymentStatus
}

// Create selalu menandai "paid", termasuk untuk payment bulan lampau.
// Regression guard: jangan "diperbaiki" jadi cek bulan berjalan.
func TestCreateWithReconcile_PastMonthStillMarksPaid(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)

	p := newPayment(student.StudentID, "2020-01")
	require.NoError(t, service.CreateWithReconcile(db, &p))

	assert.NotEqual(t, uuid.Nil, p.PaymentID)
	assert.Equal(t, sModel.PaymentStatusPaid, studentStatus(t, db, student.StudentID))
}

func TestCreateWithReconcile_CurrentMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)

	p := newPayment(student.StudentID, helper.CurrentMonth())
	require.NoError(t, service.CreateWithReconcile(db, &p))

	assert.Equal(t, sModel.PaymentStatusPaid, studentStatus(t, db, student.StudentID))
}

// Hapus satu-satunya payment bulan berjalan -> kembali "unpaid".
func TestDeleteWithReconcile_LastCurrentMonthPayment(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)
	now := helper.CurrentMonth()

	p := newPayment(student.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &p))

	require.NoError(t, service.DeleteWithReconcile(db, p.PaymentID, now))

	assert.Equal(t, sModel.PaymentStatusUnpaid, studentStatus(t, db, student.StudentID))

	var count int64
	require.NoError(t, db.Model(&pModel.PaymentModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

// Masih ada payment lain di bulan berjalan -> status tetap "paid".
func TestDeleteWithReconcile_OtherCurrentMonthPaymentRemains(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)
	now := helper.CurrentMonth()

	first := newPayment(student.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &first))
	second := newPayment(student.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &second))

	require.NoError(t, service.DeleteWithReconcile(db, first.PaymentID, now))

	assert.Equal(t, sModel.PaymentStatusPaid, studentStatus(t, db, student.StudentID))
}

// Payment tersisa milik bulan LAIN tidak menahan status "paid".
func TestDeleteWithReconcile_OnlyPastMonthRemains(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)
	now := helper.CurrentMonth()

	past := newPayment(student.StudentID, "2020-01")
	require.NoError(t, service.CreateWithReconcile(db, &past))
	current := newPayment(student.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &current))

	require.NoError(t, service.DeleteWithReconcile(db, current.PaymentID, now))

	assert.Equal(t, sModel.PaymentStatusUnpaid, studentStatus(t, db, student.StudentID))
}

// Payment milik siswa lain tidak ikut dihitung.
func TestDeleteWithReconcile_OtherStudentNotCounted(t *testing.T) {
	db := testutil.NewTestDB(t)
	a := newStudent(t, db, sModel.PaymentStatusUnpaid)
	b := newStudent(t, db, sModel.PaymentStatusUnpaid)
	now := helper.CurrentMonth()

	pa := newPayment(a.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &pa))
	pb := newPayment(b.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &pb))

	require.NoError(t, service.DeleteWithReconcile(db, pa.PaymentID, now))

	assert.Equal(t, sModel.PaymentStatusUnpaid, studentStatus(t, db, a.StudentID))
	assert.Equal(t, sModel.PaymentStatusPaid, studentStatus(t, db, b.StudentID))
}

// Delete kedua kali untuk ID yang sama harus ErrRecordNotFound.
func TestDeleteWithReconcile_DoubleDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	student := newStudent(t, db, sModel.PaymentStatusUnpaid)
	now := helper.CurrentMonth()

	p := newPayment(student.StudentID, now)
	require.NoError(t, service.CreateWithReconcile(db, &p))

	require.NoError(t, service.DeleteWithReconcile(db, p.PaymentID, now))
	err := service.DeleteWithReconcile(db, p.PaymentID, now)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteWithReconcile_UnknownID(t *testing.T) {
	db := testutil.NewTestDB(t)

	err := service.DeleteWithReconcile(db, uuid.New(), helper.CurrentMonth())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
