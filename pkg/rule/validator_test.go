package rule_test

import (
	"testing"

	"github.com/chrisgzf/cadet/pkg/rule"
)

// groupForm 用于测试 ValidateStruct.
type groupForm struct {
	Name   string `rule:"required,max=64"`
	Leader string `rule:"omitempty,max=64"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	if rule.Engine() == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := groupForm{Name: "1F", Leader: "avenger"}
	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 缺少必填 Name
	missing := groupForm{Leader: "avenger"}
	if err := rule.ValidateStruct(missing); err == nil {
		t.Error("Expected error for struct missing name, got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	if err := rule.ValidateVar("staff@example.com", "required,email"); err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	if err := rule.ValidateVar("not-an-email", "required,email"); err == nil {
		t.Error("Expected error for invalid email, got nil")
	}
}

// TestErrors 测试 Errors 将校验错误按字段展开.
func TestErrors(t *testing.T) {
	err := rule.ValidateStruct(groupForm{})
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	fields := rule.Errors(err)
	if len(fields) == 0 {
		t.Fatal("Expected field errors, got none")
	}

	if _, ok := fields["name"]; !ok {
		t.Errorf("Expected error for field name, got %v", fields)
	}

	// 非校验错误返回 nil
	if got := rule.Errors(nil); got != nil {
		t.Errorf("Expected nil for nil error, got %v", got)
	}
}
