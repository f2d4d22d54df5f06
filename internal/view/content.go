package view

var storeContact = ContactInfo{
	Email:   "support@minimal.shop",
	Hotline: "0123 456 789",
	Address: "Số 123, Đường ABC, Quận XYZ, Thành phố HCM",
}

var testimonials = []Testimonial{
	{Quote: "Camera lắp đặt nhanh, hình ảnh rõ nét cả ban đêm.", Author: "Minh, chủ cửa hàng"},
	{Quote: "Đội hỗ trợ phản hồi trong vài phút, rất chuyên nghiệp.", Author: "Lan, quản lý kho"},
	{Quote: "Giá tốt hơn hẳn so với các nhà phân phối khác.", Author: "Hùng, giám đốc vận hành"},
}

// AboutPage returns the about page content.
func AboutPage() InfoPage {
	return InfoPage{
		Title: "Giới Thiệu Về Chúng Tôi",
		Intro: "Chúng tôi là nhà cung cấp hàng đầu các sản phẩm camera an ninh dành cho doanh nghiệp, hợp tác trực tiếp với Geovision để mang đến những giải pháp giám sát hiện đại, chất lượng cao.",
		Sections: []InfoSection{
			{
				Heading: "Sứ Mệnh Của Chúng Tôi",
				Body:    "Chúng tôi cam kết cung cấp các sản phẩm camera giám sát tiên tiến, giúp doanh nghiệp đảm bảo an toàn, nâng cao hiệu suất quản lý và giám sát tài sản một cách hiệu quả.",
			},
			{
				Heading: "Tại Sao Chọn Chúng Tôi?",
				Bullets: []string{
					"Sản phẩm chất lượng cao từ Geovision với công nghệ tiên tiến.",
					"Giải pháp tối ưu cho từng loại hình doanh nghiệp.",
					"Dịch vụ khách hàng tận tâm, hỗ trợ 24/7.",
					"Giá cả cạnh tranh nhờ hợp tác trực tiếp với nhà cung cấp.",
				},
			},
		},
		Contact: storeContact,
	}
}

// ContactPage returns the contact page content.
func ContactPage() InfoPage {
	return InfoPage{
		Title: "Liên Hệ",
		Intro: "Hãy liên hệ với chúng tôi để được tư vấn giải pháp giám sát phù hợp với doanh nghiệp của bạn.",
		Sections: []InfoSection{
			{Heading: "Giờ Làm Việc", Body: "Thứ Hai đến Thứ Bảy, 8:00 - 18:00."},
		},
		Contact: storeContact,
	}
}
