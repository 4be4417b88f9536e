package eligibility

const (
	msgMissingPrefix  = "Dokumen wajib belum diunggah: "
	msgRejectedPrefix = "Dokumen ditolak, silakan unggah ulang: "
	msgPendingPrefix  = "Dokumen sedang menunggu verifikasi: "
	msgSuccess        = "Semua dokumen wajib telah diverifikasi. Anda dapat melakukan pemesanan."
	msgIncomplete     = "Verifikasi dokumen belum lengkap."
	msgUnavailable    = "Tidak dapat memverifikasi status dokumen. Silakan coba lagi nanti."

	labelSeparator = ", "
)
