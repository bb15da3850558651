// internals/features/finance/payments/service/reconciler.go
//
// Sinkronisasi student_payment_status dengan keberadaan baris payment.
// Dua aturan, sengaja tidak simetris (perilaku warisan yang dipertahankan):
//   - create: status selalu jadi "paid", berapapun payment_month-nya,
//     termasuk pembayaran untuk bulan lampau/akan datang;
//   - delete: status jadi "unpaid" hanya bila tidak tersisa satu pun
//     payment siswa tsb untuk bulan kalender BERJALAN (dihitung saat delete,
//     bukan bulan milik payment yang dihapus).
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	sModel "bimbelku_backend/internals/features/academics/students/model"
	pModel "bimbelku_backend/internals/features/finance/payments/model"
)

// CreateWithReconcile menulis payment lalu menandai siswa "paid",
// keduanya dalam satu transaksi.
func CreateWithReconcile(db *gorm.DB, m *pModel.PaymentModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return tx.Model(&sModel.StudentModel{}).
			Where("student_id = ?", m.PaymentStudentID).
			Update("student_payment_status", sModel.PaymentStatusPaid).Error
	})
}

// DeleteWithReconcile menghapus payment lalu mengecek sisa pembayaran
// bulan berjalan, dalam satu transaksi. Mengembalikan gorm.ErrRecordNotFound
// bila payment tidak ada (delete kedua kali → 404).
func DeleteWithReconcile(db *gorm.DB, paymentID uuid.UUID, currentMonth string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment pModel.PaymentModel
		if err := tx.First(&payment, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}

		if err := tx.Delete(&pModel.PaymentModel{}, "payment_id = ?", paymentID).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&pModel.PaymentModel{}).
			Where("payment_student_id = ? AND payment_month = ?", payment.PaymentStudentID, currentMonth).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		return tx.Model(&sModel.StudentModel{}).
			Where("student_id = ?", payment.PaymentStudentID).
			Update("student_payment_status", sModel.PaymentStatusUnpaid).Error
	})
}
