package utils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHTMLSanitizes(t *testing.T) {
	html, err := RenderHTML("# 标题\n\n正文<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>")
	assert.NotContains(t, html, "<script>")

	_, err = RenderHTML("   ")
	assert.ErrorIs(t, err, ErrEmptyContent)
}

func TestExtractText(t *testing.T) {
	text, err := ExtractText("<p>第一段</p><style>p{}</style><p>第二段</p>")
	require.NoError(t, err)
	assert.Contains(t, text, "第一段")
	assert.Contains(t, text, "第二段")
	assert.NotContains(t, text, "p{}")
}

func TestConvertHTMLToMarkdown(t *testing.T) {
	md, err := ConvertHTMLToMarkdown("<h2>小节</h2><p>内容</p>")
	require.NoError(t, err)
	assert.Contains(t, md, "## 小节")
}

func TestIsIntranetIP(t *testing.T) {
	assert.True(t, IsIntranetIP(net.ParseIP("127.0.0.1")))
	assert.True(t, IsIntranetIP(net.ParseIP("10.1.2.3")))
	assert.True(t, IsIntranetIP(net.ParseIP("192.168.0.1")))
	assert.True(t, IsIntranetIP(net.ParseIP("172.20.0.1")))
	assert.False(t, IsIntranetIP(net.ParseIP("8.8.8.8")))
}

func TestRegionByIPWithoutDatabase(t *testing.T) {
	// 未加载ip2region库时的降级行为
	assert.Equal(t, "内网地址", RegionByIP("127.0.0.1"))
	assert.Equal(t, "未知地区", RegionByIP("8.8.8.8"))
	assert.Equal(t, "未知地区", RegionByIP("not-an-ip"))
}

func TestInitGeoEmptyPath(t *testing.T) {
	// 空路径是显式关闭，不报错
	require.NoError(t, InitGeo(""))
}
