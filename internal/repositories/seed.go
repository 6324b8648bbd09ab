package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"edugo/internal/models/db_models"
)

// Seed data for the in-memory providers. Used when no POSTGRES_URL is
// configured so the site still serves a full catalog.

func newID() db_models.BaseModel {
	return db_models.BaseModel{ID: uuid.New(), CreatedAt: time.Now().Unix()}
}

func SeedPrograms() []db_models.Program {
	return []db_models.Program{
		{
			BaseModel:    newID(),
			Title:        "Auckland Secondary School Year",
			Country:      "New Zealand",
			City:         "Auckland",
			AgeRange:     "13-18 歲",
			Duration:     "1 academic year",
			DisplayPrice: "NZ$ 20,000 起",
			BudgetTWD:    400000,
			Category:     db_models.CategoryStudyAbroad,
			Language:     "English",
			Description:  "Full-year placement in an Auckland public secondary school with homestay.",
			Tags:         pq.StringArray{"中學留學", "寄宿家庭", "13-18 歲"},
			Highlights:   pq.StringArray{"NCEA curriculum", "Weekly guardian check-in"},
			Images:       pq.StringArray{"/img/programs/auckland-year.jpg"},
		},
		{
			BaseModel:    newID(),
			Title:        "UK Boarding School Pathway",
			Country:      "United Kingdom",
			City:         "Oxford",
			AgeRange:     "13-18 歲",
			Duration:     "2 academic years",
			DisplayPrice: "£ 35,000 起",
			BudgetTWD:    900000,
			Category:     db_models.CategoryStudyAbroad,
			Language:     "English",
			Description:  "GCSE and A-Level pathway at partner boarding schools, full guardianship included.",
			Tags:         pq.StringArray{"寄宿學校", "升學", "13-18 歲"},
			Highlights:   pq.StringArray{"A-Level pathway", "University counselling"},
			Images:       pq.StringArray{"/img/programs/uk-boarding.jpg"},
		},
		{
			BaseModel:    newID(),
			Title:        "Christchurch High School Semester",
			Country:      "New Zealand",
			City:         "Christchurch",
			AgeRange:     "13-18 歲",
			Duration:     "1 semester",
			DisplayPrice: "NZ$ 22,500 起",
			BudgetTWD:    450000,
			Category:     db_models.CategoryStudyAbroad,
			Language:     "English",
			Description:  "One-semester exchange with credit transfer support and airport pick-up.",
			Tags:         pq.StringArray{"中學留學", "學期交換", "13-18 歲"},
			Highlights:   pq.StringArray{"Credit transfer", "Outdoor education"},
			Images:       pq.StringArray{"/img/programs/chc-semester.jpg"},
		},
		{
			BaseModel:    newID(),
			Title:        "Brisbane Study Tour Term",
			Country:      "Australia",
			City:         "Brisbane",
			AgeRange:     "10-15 歲",
			Duration:     "10 weeks",
			DisplayPrice: "AU$ 18,000 起",
			BudgetTWD:    380000,
			Category:     db_models.CategoryStudyAbroad,
			Language:     "English",
			Description:  "One-term school insertion with weekend excursions along the Gold Coast.",
			Tags:         pq.StringArray{"學期插班", "10-15 歲"},
			Highlights:   pq.StringArray{"School insertion", "Weekend excursions"},
			Images:       pq.StringArray{"/img/programs/brisbane-term.jpg"},
		},
		{
			BaseModel:    newID(),
			Title:        "Parent-Child Micro Study in Cebu",
			Country:      "Philippines",
			City:         "Cebu",
			AgeRange:     "6-12 歲",
			Duration:     "4 weeks",
			DisplayPrice: "NT$ 150,000 起",
			BudgetTWD:    150000,
			Category:     db_models.CategoryMicroStudy,
			Language:     "English",
			Description:  "Four-week parent-child micro study: child joins a local primary class with a buddy, parent takes morning language lessons.",
			Tags:         pq.StringArray{"親子微留學", "6-12 歲", "buddy program"},
			Highlights:   pq.StringArray{"Local buddy", "Parent classes"},
			Images:       pq.StringArray{"/img/programs/cebu-micro.jpg"},
		},
		{
			BaseModel:    newID(),
			Title:        "Wellington Summer English Camp",
			Country:      "New Zealand",
			City:         "Wellington",
			AgeRange:     "8-14 歲",
			Duration:     "3 weeks",
			DisplayPrice: "NZ$ 6,500 起",
			BudgetTWD:    130000,
			Category:     db_models.CategorySummerCamp,
			Language:     "English",
			Description:  "Holiday campus program mixing morning English classes with afternoon activities.",
			Tags:         pq.StringArray{"夏令營", "8-14 歲"},
			Highlights:   pq.StringArray{"Small classes", "Farm visit"},
			Images:       pq.StringArray{"/img/programs/wlg-camp.jpg"},
		},
	}
}

func SeedTeamMembers() []db_models.TeamMember {
	return []db_models.TeamMember{
		{BaseModel: newID(), Name: "Grace Lin", Role: "Founder / Senior Consultant", Bio: "Fifteen years placing students in NZ and UK schools.", PhotoURL: "/img/team/grace.jpg", Order: 1},
		{BaseModel: newID(), Name: "Daniel Chen", Role: "Education Consultant", Bio: "Former homestay coordinator in Auckland.", PhotoURL: "/img/team/daniel.jpg", Order: 2},
		{BaseModel: newID(), Name: "Emily Wu", Role: "Student Care Manager", Bio: "Handles guardianship and in-country support.", PhotoURL: "/img/team/emily.jpg", Order: 3},
	}
}

func SeedTestimonials() []db_models.Testimonial {
	return []db_models.Testimonial{
		{BaseModel: newID(), Author: "王媽媽", Program: "Parent-Child Micro Study in Cebu", Quote: "一個月的親子微留學讓孩子愛上英文，顧問全程陪伴很安心。", PhotoURL: "/img/testimonials/wang.jpg"},
		{BaseModel: newID(), Author: "Kevin H.", Program: "Auckland Secondary School Year", Quote: "The weekly check-ins made the first year abroad much less scary.", PhotoURL: "/img/testimonials/kevin.jpg"},
	}
}

func SeedFAQs() []db_models.FAQ {
	return []db_models.FAQ{
		{BaseModel: newID(), Question: "幾歲適合出國留學？", Answer: "多數合作學校接受 10 歲以上插班，長期留學建議 13 歲以上。", Order: 1},
		{BaseModel: newID(), Question: "家長可以陪讀嗎？", Answer: "可以，親子微留學與陪讀簽證方案都有提供。", Order: 2},
		{BaseModel: newID(), Question: "預算大概需要多少？", Answer: "短期營隊約 10-20 萬，學年留學 40 萬起，依國家與學校而定。", Order: 3},
	}
}

func SeedNews() []db_models.NewsItem {
	return []db_models.NewsItem{
		{BaseModel: newID(), Title: "2026 暑期營隊早鳥報名開始", Summary: "五月底前報名享早鳥優惠。", ImageURL: "/img/news/summer-2026.jpg", PublishedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Unix()},
		{BaseModel: newID(), Title: "紐西蘭中學說明會", Summary: "Auckland 合作校代表來台說明會。", ImageURL: "/img/news/nz-seminar.jpg", PublishedAt: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC).Unix()},
	}
}

func SeedArticles() []db_models.Article {
	return []db_models.Article{
		{BaseModel: newID(), Title: "如何挑選寄宿家庭", Category: "guides", Body: "挑選寄宿家庭時，先確認家庭成員、距離學校的通勤時間與膳食安排……", CoverURL: "/img/articles/homestay.jpg", Tags: pq.StringArray{"寄宿家庭", "行前準備"}, PublishedAt: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC).Unix()},
		{BaseModel: newID(), Title: "NCEA 與 A-Level 差在哪", Category: "guides", Body: "兩種學制的評量方式與大學申請路徑各有優劣……", CoverURL: "/img/articles/ncea.jpg", Tags: pq.StringArray{"學制", "升學"}, PublishedAt: time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC).Unix()},
		{BaseModel: newID(), Title: "學生故事：Kevin 的奧克蘭一年", Category: "stories", Body: "從不敢開口到拿下演講比賽第二名，Kevin 的一年……", CoverURL: "/img/articles/kevin.jpg", Tags: pq.StringArray{"學生故事"}, PublishedAt: time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC).Unix()},
	}
}
