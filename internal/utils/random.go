package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mozillazg/go-pinyin"
	"github.com/youban-dev/workforce-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonSurnames = []string{
	"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}
var commonNameCharacters = []string{
	"伟", "强", "芳", "敏", "静", "丽", "刚", "杰", "娟", "勇",
	"艳", "涛", "明", "军", "磊", "洋", "勇", "霞", "飞", "玲",
	"超", "华", "平", "辉", "梅", "鑫", "龙", "鹏", "玉", "斌",
	"庆", "建", "丹", "彬", "凤", "旭", "宁", "乐", "成", "欣",
}

func GenerateRandomChineseName() string {
	surname := commonSurnames[rand.Intn(len(commonSurnames))]
	nameLength := rand.Intn(2) + 1
	name := ""

	for i := 0; i < nameLength; i++ {
		name += commonNameCharacters[rand.Intn(len(commonNameCharacters))]
	}
	return surname + name
}

var roles = []domain.Role{
	domain.RoleStaff,
	domain.RoleManager,
}

// GenerateRandomRole 只在员工和经理之间随机，企业管理员由初始化流程单独创建
func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var digits = "0123456789"

func GenerateUsernameFromChineseName(chineseName string) string {
	pinyinArray := pinyin.LazyConvert(chineseName, nil)
	username := ""

	for _, pinyin := range pinyinArray {
		length := rand.Intn(len(pinyin)) + 1
		username += pinyin[:length]
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

func GenerateRandomUser(companyID int64, password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomChineseName()
	username := GenerateUsernameFromChineseName(fullName)
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		CompanyID:    companyID,
		Username:     username,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Email:        username + "@" + emailDomainName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var shiftColors = []string{
	"#4F8EF7", "#34C759", "#FF9500", "#FF3B30", "#AF52DE",
	"#5AC8FA", "#FFCC00", "#FF2D55", "#8E8E93", "#00C7BE",
}

func GenerateRandomShiftColor() string {
	return shiftColors[rand.Intn(len(shiftColors))]
}

var shiftTitles = []string{"早班", "中班", "晚班", "夜班", "门店值班", "仓库盘点", "客服轮值"}

// GenerateRandomWorkShift 在指定日期生成一个随机班次，时间取整点到半点之间
func GenerateRandomWorkShift(companyID int64, employeeID int64, date time.Time) *domain.WorkShift {
	startHour := rand.Intn(14) + 6 // 06:00 ~ 19:00 之间开始
	duration := rand.Intn(6) + 2   // 2 ~ 7 小时
	startMinute := rand.Intn(2) * 30

	startAt := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMinute, 0, 0, date.Location())
	endAt := startAt.Add(time.Duration(duration) * time.Hour)

	return &domain.WorkShift{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		StartAt:    startAt,
		EndAt:      endAt,
		Title:      shiftTitles[rand.Intn(len(shiftTitles))],
		Color:      GenerateRandomShiftColor(),
	}
}

var vacationReasons = []string{"年假", "事假", "病假", "婚假", "探亲"}

func GenerateRandomVacationRequest(companyID int64, employeeID int64) *domain.VacationRequest {
	startDate := time.Now().AddDate(0, 0, rand.Intn(30)+1)
	endDate := startDate.AddDate(0, 0, rand.Intn(5))

	return &domain.VacationRequest{
		CompanyID:  companyID,
		EmployeeID: employeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     vacationReasons[rand.Intn(len(vacationReasons))],
		Status:     domain.VacationPending,
	}
}
