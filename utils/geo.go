package utils

import (
	"fmt"
	"net"
	"strings"

	"github.com/lionsoul2014/ip2region/binding/golang/xdb"
)

var geoSearcher *xdb.Searcher

// InitGeo 加载ip2region库到内存
// 路径为空表示不启用地域解析，相关查询返回未知
func InitGeo(xdbPath string) error {
	if xdbPath == "" {
		return nil
	}
	cBuff, err := xdb.LoadContentFromFile(xdbPath)
	if err != nil {
		return fmt.Errorf("读取ip2region库文件失败: %v", err)
	}
	searcher, err := xdb.NewWithBuffer(cBuff)
	if err != nil {
		return fmt.Errorf("创建ip2region查询对象失败: %v", err)
	}
	geoSearcher = searcher
	return nil
}

// RegionByIP 解析IP所属地域
func RegionByIP(ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "未知地区"
	}
	if IsIntranetIP(parsed) {
		return "内网地址"
	}
	if geoSearcher == nil {
		return "未知地区"
	}

	record, err := geoSearcher.SearchByStr(ip)
	if err != nil {
		return "未知地区"
	}
	fields := strings.Split(record, "|")
	if len(fields) >= 4 && fields[3] != "0" {
		return fields[3] // 城市
	}
	if len(fields) >= 3 && fields[2] != "0" {
		return fields[2] // 省份
	}
	if len(fields) >= 1 && fields[0] != "0" {
		return fields[0] // 国家
	}
	return "未知地区"
}

// IsIntranetIP 判断IP是否为内网地址
func IsIntranetIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return true
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return true
	}
	// 10.x / 172.16-31.x / 192.168.x / 169.254.x
	return (ip4[0] == 192 && ip4[1] == 168) ||
		(ip4[0] == 172 && ip4[1] >= 16 && ip4[1] <= 31) ||
		(ip4[0] == 10) ||
		(ip4[0] == 169 && ip4[1] == 254)
}
